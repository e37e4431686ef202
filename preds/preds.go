package preds

import (
	"math/rand"

	"github.com/stefan-balke/con-espressione/config"
	"github.com/stefan-balke/con-espressione/midi"
	"github.com/stefan-balke/con-espressione/model"
	"github.com/stefan-balke/con-espressione/scoremap"
	"github.com/stefan-balke/con-espressione/stats"
	"github.com/stefan-balke/con-espressione/table"
	"github.com/stefan-balke/con-espressione/transform"
	"github.com/stefan-balke/con-espressione/util"
)

// Load reads a precomputed prediction file and returns the score map
// keyed by unique score position. With deadpan set, the expressive
// columns of the file are ignored and replaced by a performance without
// expression; otherwise they are normalized and post-processed per cfg.
func Load(filename string, deadpan bool, cfg config.PostProcess) (model.ScoreMap, error) {
	t, err := table.Load(filename)
	if err != nil {
		return nil, err
	}

	if deadpan {
		t = transform.Deadpan(t)
	} else {
		t, err = transform.Apply(t, cfg)
		if err != nil {
			return nil, err
		}
	}

	return scoremap.Build(t), nil
}

// GenerateDummy derives a prediction file from a score in MIDI format,
// with either deadpan or randomly sampled expressive parameters. The
// output is readable by Load. For testing purposes only.
func GenerateDummy(midiPath, outPath string, deadpan bool) error {
	parsed, err := midi.ReadMidiFile(midiPath)
	if err != nil {
		return err
	}
	notes, err := midi.GetNotes(parsed)
	if err != nil {
		return err
	}

	n := len(notes)
	t := model.NoteTable{
		Pitches:   make([]uint8, n),
		Onsets:    make([]float64, n),
		Durations: make([]float64, n),
		Melody:    make([]float64, n),
	}
	for i, note := range notes {
		t.Pitches[i] = note.Pitch
		t.Onsets[i] = note.Onset
		t.Durations[i] = note.Duration
	}

	// Onsets start at 0
	minOnset := stats.Min(t.Onsets)
	for i := range t.Onsets {
		t.Onsets[i] -= minOnset
	}

	if deadpan {
		t = transform.Deadpan(t)
	} else {
		t.VelTrend = make([]float64, n)
		t.VelDev = make([]float64, n)
		t.LogBpr = make([]float64, n)
		t.Timing = make([]float64, n)
		t.LogArt = make([]float64, n)
		for i := 0; i < n; i++ {
			t.VelTrend[i] = util.Clip(1-0.05*rand.NormFloat64(), 0, 2)
			t.VelDev[i] = 0.1 * rand.Float64()
			t.LogBpr[i] = 0.1 * rand.NormFloat64()
			t.Timing[i] = 0.05 * rand.NormFloat64()
			t.LogArt[i] = 0.3 * rand.NormFloat64()
		}
	}

	return table.Save(outPath, t)
}
