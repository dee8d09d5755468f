package config

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/darpan/flow"
	"github.com/lixenwraith/darpan/terminal"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("defaults = %+v, want %+v", cfg, Default())
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("DARPAN_FPS", "30")
	t.Setenv("DARPAN_SEED", "42")
	t.Setenv("DARPAN_PIN", "4821")
	t.Setenv("DARPAN_AUDIO", "true")
	t.Setenv("DARPAN_LOG", "/tmp/darpan.log")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.FPS != 30 || cfg.Seed != 42 || cfg.Pin != "4821" || !cfg.Audio || cfg.LogFile != "/tmp/darpan.log" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("DARPAN_FPS", "not-an-int")

	_, err := ParseEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "config: parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DARPAN_FPS", "30")
	t.Setenv("DARPAN_PIN", "4821")

	cfg, err := Load([]string{"-fps", "90", "-color", "256"}, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FPS != 90 {
		t.Errorf("fps = %d, want flag value 90", cfg.FPS)
	}
	if cfg.Pin != "4821" {
		t.Errorf("pin = %q, want env value", cfg.Pin)
	}
	if m, _ := cfg.ColorMode(); m != terminal.ColorMode256 {
		t.Errorf("color mode = %v", m)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"fps low", []string{"-fps", "0"}, "fps"},
		{"fps high", []string{"-fps", "1000"}, "fps"},
		{"pin short", []string{"-pin", "12"}, "invalid pin"},
		{"pin range", []string{"-pin", "0123"}, "invalid pin"},
		{"level", []string{"-log-level", "loud"}, "log level"},
		{"background", []string{"-background", "blue"}, "background"},
		{"color", []string{"-color", "16"}, "color mode"},
		{"unknown flag", []string{"-nope"}, "parse flags"},
		{"positional", []string{"extra"}, "unexpected arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "config: ") || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q, want config prefix and %q", err, tt.want)
			}
		})
	}
}

func TestInvalidPinWrapsSentinel(t *testing.T) {
	_, err := Load([]string{"-pin", "99999"}, io.Discard)
	if !errors.Is(err, flow.ErrInvalidPin) {
		t.Fatalf("error %v does not wrap ErrInvalidPin", err)
	}
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	_, err := Load([]string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "-fps") {
		t.Errorf("usage missing flags: %q", out.String())
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.FPS = 50

	if level, err := cfg.SlogLevel(); err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v", level, err)
	}
	if got := cfg.FrameInterval(); got != 20*time.Millisecond {
		t.Errorf("FrameInterval() = %v", got)
	}

	cfg.FPS = 0
	if cfg.FrameInterval() <= 0 {
		t.Error("zero fps produced a non-positive interval")
	}
}
