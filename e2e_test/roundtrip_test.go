//go:build e2e
// +build e2e

package e2e_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/stefan-balke/con-espressione/config"
	"github.com/stefan-balke/con-espressione/preds"
	"github.com/stefan-balke/con-espressione/scoremap"
)

func writeScore(t *testing.T) string {
	s := smf.New()
	ticks := smf.MetricTicks(960)
	s.TimeFormat = ticks
	quarter := uint32(ticks.Resolution())

	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(0, gomidi.NoteOn(0, 64, 100))
	tr.Add(quarter, gomidi.NoteOff(0, 60))
	tr.Add(0, gomidi.NoteOff(0, 64))
	tr.Add(0, gomidi.NoteOn(0, 67, 100))
	tr.Add(quarter, gomidi.NoteOff(0, 67))
	tr.Close(0)
	s.Add(tr)

	path := filepath.Join(t.TempDir(), "score.mid")
	assert.NoError(t, s.WriteFile(path))
	return path
}

func TestDeadpanRoundTrip(t *testing.T) {
	midiPath := writeScore(t)
	predsPath := filepath.Join(t.TempDir(), "preds.txt")

	assert := assert.New(t)
	assert.NoError(preds.GenerateDummy(midiPath, predsPath, true))

	scoreMap, err := preds.Load(predsPath, true, config.PostProcess{})
	assert.NoError(err)

	onsets := scoremap.SortedOnsets(scoreMap)
	assert.Equal([]float64{0, 1}, onsets)
	assert.Equal([]uint8{60, 64}, scoreMap[0.0].Pitches)
	assert.Equal([]uint8{67}, scoreMap[1.0].Pitches)
	assert.Equal(1.0, scoreMap[1.0].Ioi)

	for _, p := range scoreMap {
		assert.Equal(1.0, p.VelTrend)
		assert.Equal(0.0, p.LogBpr)
		for i := range p.Pitches {
			assert.Equal(0.0, p.VelDev[i])
			assert.Equal(0.0, p.Timing[i])
			assert.Equal(0.0, p.LogArt[i])
			assert.Equal(0.0, p.Melody[i])
		}
	}
}

func TestRandomRoundTrip(t *testing.T) {
	midiPath := writeScore(t)
	predsPath := filepath.Join(t.TempDir(), "preds.txt")

	assert := assert.New(t)
	assert.NoError(preds.GenerateDummy(midiPath, predsPath, false))

	// random parameters still decode as a deadpan performance when asked
	scoreMap, err := preds.Load(predsPath, true, config.PostProcess{})
	assert.NoError(err)
	assert.Len(scoreMap, 2)
	for _, p := range scoreMap {
		assert.Equal(1.0, p.VelTrend)
	}
}
