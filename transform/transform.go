package transform

import (
	"fmt"
	"math"

	"github.com/stefan-balke/con-espressione/config"
	"github.com/stefan-balke/con-espressione/model"
	"github.com/stefan-balke/con-espressione/stats"
)

// Apply normalizes the expressive parameters of the table and applies the
// per-field rescaling from cfg. Score columns (pitch, onset, duration,
// melody) pass through untouched. The input table is not modified.
//
// vel_trend is min-max normalized, raised to the exaggeration exponent
// and then divided by its own mean, so the returned trend always has
// mean 1.0. The other four parameters are standardized and then mapped
// through value*std + mean.
func Apply(t model.NoteTable, cfg config.PostProcess) (model.NoteTable, error) {
	res := t

	velTrend, err := stats.MinMaxNormalize(t.VelTrend)
	if err != nil {
		return model.NoteTable{}, fmt.Errorf("vel_trend: %w", err)
	}
	if exp := cfg.VelTrend.ExagExpOr(1.0); exp != 1.0 {
		for i := range velTrend {
			velTrend[i] = math.Pow(velTrend[i], exp)
		}
	}
	mean := stats.Mean(velTrend)
	for i := range velTrend {
		velTrend[i] /= mean
	}
	res.VelTrend = velTrend

	if res.VelDev, err = rescaled("vel_dev", t.VelDev, cfg.VelDev); err != nil {
		return model.NoteTable{}, err
	}
	if res.LogBpr, err = rescaled("log_bpr", t.LogBpr, cfg.LogBpr); err != nil {
		return model.NoteTable{}, err
	}
	if res.Timing, err = rescaled("timing", t.Timing, cfg.Timing); err != nil {
		return model.NoteTable{}, err
	}
	if res.LogArt, err = rescaled("log_art", t.LogArt, cfg.LogArt); err != nil {
		return model.NoteTable{}, err
	}
	return res, nil
}

func rescaled(name string, xs []float64, fs *config.FieldScale) ([]float64, error) {
	res, err := stats.Standardize(xs)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	std := fs.StdOr(1.0)
	mean := fs.MeanOr(0.0)
	if std != 1.0 || mean != 0.0 {
		for i := range res {
			res[i] = res[i]*std + mean
		}
	}
	return res, nil
}

// Deadpan replaces the expressive parameters with those of a performance
// without any expression: constant velocity trend, no deviations, no
// timing or articulation adjustments.
func Deadpan(t model.NoteTable) model.NoteTable {
	n := t.NumNotes()
	res := t
	res.VelTrend = ones(n)
	res.VelDev = make([]float64, n)
	res.LogBpr = make([]float64, n)
	res.Timing = make([]float64, n)
	res.LogArt = make([]float64, n)
	return res
}

func ones(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = 1
	}
	return res
}
