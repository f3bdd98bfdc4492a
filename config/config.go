// Package config loads simulator defaults from MONTYHALL_* environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Iterations int    `env:"ITERATIONS" envDefault:"1000"`
	Doors      int    `env:"DOORS" envDefault:"3"`
	SweepDoors []int  `env:"SWEEP_DOORS" envDefault:"3,4,5,10" envSeparator:","`
	Seed       uint64 `env:"SEED"` // 0 means seed from the clock
	OutputDir  string `env:"OUTPUT_DIR" envDefault:"experiments"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	Trace      bool   `env:"TRACE"`
	Switch     string `env:"SWITCH_POLICY" envDefault:"random"`
	Export     bool   `env:"EXPORT" envDefault:"true"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "MONTYHALL_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
