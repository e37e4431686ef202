package table

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/stefan-balke/con-espressione/model"
)

// Column order of the prediction table:
// pitch, onset, duration, vel_trend, vel_dev, log_bpr, timing, log_art, melody
const NumColumns = 9

// Load reads a whitespace-delimited prediction table. Every non-empty
// line must contain NumColumns numeric values; the pitch column is
// coerced to integer.
func Load(path string) (model.NoteTable, error) {
	var t model.NoteTable

	f, err := os.Open(path)
	if err != nil {
		return t, fmt.Errorf("could not open prediction file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != NumColumns {
			return model.NoteTable{}, fmt.Errorf(
				"%v line %v: expected %v columns, got %v",
				path, lineNum, NumColumns, len(fields))
		}
		var row [NumColumns]float64
		for i, field := range fields {
			row[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return model.NoteTable{}, fmt.Errorf(
					"%v line %v column %v: %w", path, lineNum, i+1, err)
			}
		}
		t.Pitches = append(t.Pitches, uint8(row[0]))
		t.Onsets = append(t.Onsets, row[1])
		t.Durations = append(t.Durations, row[2])
		t.VelTrend = append(t.VelTrend, row[3])
		t.VelDev = append(t.VelDev, row[4])
		t.LogBpr = append(t.LogBpr, row[5])
		t.Timing = append(t.Timing, row[6])
		t.LogArt = append(t.LogArt, row[7])
		t.Melody = append(t.Melody, row[8])
	}
	if err := scanner.Err(); err != nil {
		return model.NoteTable{}, fmt.Errorf("could not read prediction file: %w", err)
	}
	return t, nil
}

// Save writes the table in the same layout Load reads, one note per line.
func Save(path string, t model.NoteTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create prediction file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < t.NumNotes(); i++ {
		fmt.Fprintf(w, "%.18e %.18e %.18e %.18e %.18e %.18e %.18e %.18e %.18e\n",
			float64(t.Pitches[i]), t.Onsets[i], t.Durations[i],
			t.VelTrend[i], t.VelDev[i], t.LogBpr[i],
			t.Timing[i], t.LogArt[i], t.Melody[i])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write failed for prediction file: %w", err)
	}
	return nil
}
