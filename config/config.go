package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PostProcess controls the rescaling applied to the expressive parameters
// after normalization. The zero value applies no rescaling at all; a nil
// per-field entry leaves that field at its identity transform. Option
// names match the columns of the prediction table.
type PostProcess struct {
	VelTrend *TrendShape `yaml:"vel_trend"`
	VelDev   *FieldScale `yaml:"vel_dev"`
	LogBpr   *FieldScale `yaml:"log_bpr"`
	Timing   *FieldScale `yaml:"timing"`
	LogArt   *FieldScale `yaml:"log_art"`
}

// TrendShape shapes the velocity trend curve. Exponents above 1.0
// exaggerate the dynamics, below 1.0 flatten them.
type TrendShape struct {
	ExagExp *float64 `yaml:"exag_exp"`
}

// FieldScale recenters and rescales a standardized parameter.
type FieldScale struct {
	Std  *float64 `yaml:"std"`
	Mean *float64 `yaml:"mean"`
}

func (t *TrendShape) ExagExpOr(def float64) float64 {
	if t == nil || t.ExagExp == nil {
		return def
	}
	return *t.ExagExp
}

func (f *FieldScale) StdOr(def float64) float64 {
	if f == nil || f.Std == nil {
		return def
	}
	return *f.Std
}

func (f *FieldScale) MeanOr(def float64) float64 {
	if f == nil || f.Mean == nil {
		return def
	}
	return *f.Mean
}

// LoadFile reads a PostProcess config from a YAML file. Unknown keys are
// ignored; absent keys keep their identity defaults.
func LoadFile(path string) (PostProcess, error) {
	var cfg PostProcess
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %v: %w", path, err)
	}
	return cfg, nil
}
