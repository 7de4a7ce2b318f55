package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SolverConfig is one named preset of tunable engine parameters. A zero
// field means "not set by this preset"; firstNonZeroInt/firstNonZeroFloat
// (called from CLI.Run) only consult a field the command-line flag itself left at its own zero
// value, so an explicit flag always wins over a preset.
type SolverConfig struct {
	Width       int     `yaml:"width,omitempty" koanf:"width"`
	InitialTemp float64 `yaml:"initial_temp,omitempty" koanf:"initial_temp"`
	CoolingA    float64 `yaml:"cooling_a,omitempty" koanf:"cooling_a"`
	CoolingB    float64 `yaml:"cooling_b,omitempty" koanf:"cooling_b"`
	Energy0     float64 `yaml:"energy0,omitempty" koanf:"energy0"`
}

// Config is the top-level shape of a --config YAML file: a set of named
// solver presets, selected by --preset.
type Config struct {
	Solvers map[string]SolverConfig `yaml:"solvers" koanf:"solvers"`
}

// LoadConfig loads path (if non-empty) as YAML, then layers BENCH_-prefixed
// environment overrides on top, a file-then-env koanf precedence.
// BENCH_SOLVERS__BEAM__WIDTH overrides solvers.beam.width; double
// underscores become path separators.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider("BENCH_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "BENCH_")
		s = strings.Replace(s, "__", ".", -1)
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	return &cfg, nil
}

// preset returns the named solver configuration, or the zero SolverConfig
// if name is empty or unknown.
func (c *Config) preset(name string) SolverConfig {
	if c == nil || name == "" {
		return SolverConfig{}
	}
	return c.Solvers[name]
}

func firstNonZeroInt(flag, preset, fallback int) int {
	if flag != 0 {
		return flag
	}
	if preset != 0 {
		return preset
	}
	return fallback
}

func firstNonZeroFloat(flag, preset, fallback float64) float64 {
	if flag != 0 {
		return flag
	}
	if preset != 0 {
		return preset
	}
	return fallback
}
