package model

// Note is a single score note decoded from a MIDI file. Onset and
// duration are expressed in beats.
type Note struct {
	Pitch    uint8
	Onset    float64
	Duration float64
}

// NoteTable is the flat per-note prediction table produced by the
// Basis Mixer. All slices are parallel: index i describes note i.
type NoteTable struct {
	Pitches   []uint8
	Onsets    []float64
	Durations []float64
	Melody    []float64

	// expressive parameters
	VelTrend []float64
	VelDev   []float64
	LogBpr   []float64
	Timing   []float64
	LogArt   []float64
}

func (t *NoteTable) NumNotes() int {
	return len(t.Pitches)
}

// PositionAggregate combines all notes starting at one score position.
// VelTrend and LogBpr are position-level values, so they collapse to a
// single mean; the remaining fields stay per-note, in original note order.
type PositionAggregate struct {
	Pitches   []uint8
	Ioi       float64
	Durations []float64
	VelTrend  float64
	VelDev    []float64
	LogBpr    float64
	Timing    []float64
	LogArt    []float64
	Melody    []float64
}

// ScoreMap maps each unique score position (in beats, starting at 0) to
// its aggregate. Iterate in onset order via scoremap.SortedOnsets.
type ScoreMap = map[float64]PositionAggregate
