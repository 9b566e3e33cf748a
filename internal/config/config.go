// Package config loads daemon settings from defaults, an optional JSON file
// and command-line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweeney/pir-sensor/internal/gpio"
)

type Config struct {
	Pin            int    `json:"pin"`
	Pull           string `json:"pull"`
	Backend        string `json:"backend"`
	Chip           string `json:"chip"`
	PollIntervalMs int    `json:"poll_interval_ms"`
	LogLevel       string `json:"log_level"`
	PrintState     bool   `json:"-"`
}

func Default() Config {
	return Config{
		Pin:            gpio.DefaultPin,
		Pull:           "down",
		Backend:        gpio.DefaultBackend,
		Chip:           gpio.DefaultChip,
		PollIntervalMs: 500,
		LogLevel:       "info",
	}
}

// Load parses args (without the program name). Flags override values present
// in the JSON file given by -config; flags not passed leave the file's values.
func Load(args []string) (Config, error) {
	def := Default()
	fs := flag.NewFlagSet("pir-sensor", flag.ContinueOnError)

	cfgPath := fs.String("config", "", "Path to JSON config file")
	pin := fs.Int("pin", def.Pin, "BCM pin number the sensor output is wired to")
	pull := fs.String("pull", def.Pull, "Pull bias: down|up|none")
	backend := fs.String("backend", def.Backend, "GPIO backend: gpiocdev|periph|rpio|fake")
	chip := fs.String("chip", def.Chip, "GPIO chip (gpiocdev backend)")
	pollMs := fs.Int("poll-ms", def.PollIntervalMs, "Poll interval in milliseconds")
	logLevel := fs.String("log-level", def.LogLevel, "Log level: debug|info|warn|error")
	printState := fs.Bool("print-state", false, "Print current pin level and exit")

	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pin":
			cfg.Pin = *pin
		case "pull":
			cfg.Pull = *pull
		case "backend":
			cfg.Backend = *backend
		case "chip":
			cfg.Chip = *chip
		case "poll-ms":
			cfg.PollIntervalMs = *pollMs
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	cfg.PrintState = *printState

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings that can be judged without touching hardware.
// Pin and backend are checked when the line is acquired.
func (c Config) Validate() error {
	if c.PollIntervalMs <= 0 {
		return errors.New("poll interval must be > 0")
	}
	if _, err := gpio.ParsePull(c.Pull); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// LineConfig returns the settings for acquiring the sensor line.
// It assumes Validate has passed.
func (c Config) LineConfig() gpio.LineConfig {
	pull, _ := gpio.ParsePull(c.Pull)
	return gpio.LineConfig{
		Pin:     c.Pin,
		Pull:    pull,
		Backend: c.Backend,
		Chip:    c.Chip,
	}
}
