package scoremap

import (
	"math"
	"sort"

	"github.com/stefan-balke/con-espressione/model"
	"github.com/stefan-balke/con-espressione/stats"
	"github.com/stefan-balke/con-espressione/util"
)

// Onsets are snapped to a micro-beat grid before grouping, so notes whose
// onsets differ only by float rounding still land on the same score
// position.
const quantum = 1e-6

func quantize(x float64) float64 {
	return math.Round(x/quantum) * quantum
}

// Build groups the notes of the table by score position. Onsets are
// shifted so the earliest position is 0 and the notes at each unique
// onset are collected into one PositionAggregate. The IOI of a position
// is the gap to the previous unique position, 0 for the first.
func Build(t model.NoteTable) model.ScoreMap {
	res := make(model.ScoreMap)
	if t.NumNotes() == 0 {
		return res
	}

	minOnset := stats.Min(t.Onsets)
	onsets := make([]float64, len(t.Onsets))
	for i, on := range t.Onsets {
		onsets[i] = quantize(on - minOnset)
	}

	// note indices per unique onset, in original note order
	idxsByOnset := make(map[float64][]int)
	for i, on := range onsets {
		idxsByOnset[on] = append(idxsByOnset[on], i)
	}

	uniqueOnsets := stats.UniqueSorted(onsets)
	var prev float64
	for i, on := range uniqueOnsets {
		var ioi float64
		if i > 0 {
			ioi = on - prev
		}
		prev = on

		ix := idxsByOnset[on]
		res[on] = model.PositionAggregate{
			Pitches:   gatherPitches(t.Pitches, ix),
			Ioi:       ioi,
			Durations: gather(t.Durations, ix),
			VelTrend:  stats.Mean(gather(t.VelTrend, ix)),
			VelDev:    gather(t.VelDev, ix),
			LogBpr:    stats.Mean(gather(t.LogBpr, ix)),
			Timing:    gather(t.Timing, ix),
			LogArt:    gather(t.LogArt, ix),
			Melody:    gather(t.Melody, ix),
		}
	}
	return res
}

// SortedOnsets returns the score positions of m in ascending order.
func SortedOnsets(m model.ScoreMap) []float64 {
	keys := util.GetKeys(m)
	sort.Float64s(keys)
	return keys
}

func gather(xs []float64, ix []int) []float64 {
	res := make([]float64, 0, len(ix))
	for _, i := range ix {
		res = append(res, xs[i])
	}
	return res
}

func gatherPitches(xs []uint8, ix []int) []uint8 {
	res := make([]uint8, 0, len(ix))
	for _, i := range ix {
		res = append(res, xs[i])
	}
	return res
}
