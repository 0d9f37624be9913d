package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/tilezen/hilbert/pkg/hilbert"
	"gopkg.in/yaml.v2"
)

// CurveConfig names a curve and the points to run through it.
type CurveConfig struct {
	Name   string        `yaml:"name"`
	Curve  hilbert.Curve `yaml:",inline"`
	Points [][]uint32    `yaml:"points"`
	Codes  []uint64      `yaml:"codes"`
}

// Config is the top level of a curves yaml file.
type Config struct {
	Curves []CurveConfig `yaml:"curves"`
}

// Decode reads a yaml config and validates every curve in it. Unknown keys
// are rejected.
func Decode(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid curves yaml: %w", err)
	}
	if len(cfg.Curves) == 0 {
		return nil, fmt.Errorf("no curves defined")
	}
	for i, c := range cfg.Curves {
		if c.Name == "" {
			return nil, fmt.Errorf("curve %d has no name", i)
		}
		if err := c.Curve.Validate(); err != nil {
			return nil, fmt.Errorf("curve %q: %w", c.Name, err)
		}
		for _, p := range c.Points {
			if uint(len(p)) != c.Curve.Dims {
				return nil, fmt.Errorf("curve %q: point %v has %d coordinates, want %d", c.Name, p, len(p), c.Curve.Dims)
			}
		}
	}
	return &cfg, nil
}

// Load reads and validates the yaml config at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
