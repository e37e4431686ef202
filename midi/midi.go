package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/stefan-balke/con-espressione/model"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

type noteKey struct {
	channel uint8
	key     uint8
}

// GetNotes extracts all notes from the file with onset and duration in
// beats. Only metric (ticks per quarter note) time formats are supported.
// Notes are returned sorted by onset, then pitch.
func GetNotes(s *smf.SMF) ([]model.Note, error) {
	metric, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format: %v", s.TimeFormat)
	}
	ticksPerBeat := float64(metric.Resolution())

	var notes []model.Note
	for _, events := range s.Tracks {
		var absTicks int64
		pressed := make(map[noteKey]int64)
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				pressed[noteKey{channel, key}] = absTicks
			case event.Message.GetNoteOff(&channel, &key, &velocity),
				event.Message.GetNoteOn(&channel, &key, &velocity):
				// note on with velocity 0 counts as a note off
				onTicks, ok := pressed[noteKey{channel, key}]
				if !ok {
					continue
				}
				delete(pressed, noteKey{channel, key})
				notes = append(notes, model.Note{
					Pitch:    key,
					Onset:    float64(onTicks) / ticksPerBeat,
					Duration: float64(absTicks-onTicks) / ticksPerBeat,
				})
			}
		}
	}

	if len(notes) == 0 {
		return nil, errors.New("midi file contains no notes")
	}

	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Onset != notes[j].Onset {
			return notes[i].Onset < notes[j].Onset
		}
		return notes[i].Pitch < notes[j].Pitch
	})
	return notes, nil
}
