// Package config resolves runtime settings from DARPAN_* environment variables and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/darpan/flow"
	"github.com/lixenwraith/darpan/parameter"
	"github.com/lixenwraith/darpan/render"
	"github.com/lixenwraith/darpan/terminal"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "DARPAN_"

// Config holds the resolved settings, flags override environment which overrides defaults
type Config struct {
	FPS        int    `env:"FPS"        envDefault:"60"`
	Seed       int64  `env:"SEED"       envDefault:"0"` // 0 picks a random seed
	Pin        string `env:"PIN"`                       // empty generates one
	Audio      bool   `env:"AUDIO"      envDefault:"false"`
	LogFile    string `env:"LOG"`                       // empty discards logs
	LogLevel   string `env:"LOG_LEVEL"  envDefault:"info"`
	Background string `env:"BACKGROUND" envDefault:"#f8fafc"`
	Color      string `env:"COLOR"      envDefault:"auto"`
}

// Default returns the built-in settings without consulting the environment
func Default() Config {
	return Config{
		FPS:        parameter.DefaultFPS,
		LogLevel:   "info",
		Background: parameter.ColorBackground,
		Color:      "auto",
	}
}

// ParseEnv loads configuration from DARPAN_* environment variables
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// Load resolves environment then args and validates the result
// flag.ErrHelp is returned unwrapped when -h is given
func Load(args []string, output io.Writer) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("darpan", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments %v", fs.Args())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bind registers flags whose defaults are the current values
func (c *Config) bind(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "frame rate")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed, 0 for random")
	fs.StringVar(&c.Pin, "pin", c.Pin, "host PIN (4 digits, 1000-9999), empty for random")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "enable sound cues")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file path, empty to discard")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.Background, "background", c.Background, "page background color (#rrggbb)")
	fs.StringVar(&c.Color, "color", c.Color, "color mode: auto, truecolor, 256")
}

// Validate checks every field and reports the first problem
func (c Config) Validate() error {
	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		return fmt.Errorf("config: fps %d outside %d-%d", c.FPS, parameter.MinFPS, parameter.MaxFPS)
	}
	if c.Pin != "" {
		if err := flow.ValidatePin(c.Pin); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if _, err := render.ParseHex(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if _, err := c.ColorMode(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}

// ColorMode parses Color
func (c Config) ColorMode() (terminal.ColorMode, error) {
	m, err := terminal.ParseColorMode(c.Color)
	if err != nil {
		return terminal.ColorModeAuto, fmt.Errorf("config: %w", err)
	}
	return m, nil
}

// FrameInterval is the frame period for FPS
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}
