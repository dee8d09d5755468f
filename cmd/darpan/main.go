package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/darpan/audio"
	"github.com/lixenwraith/darpan/config"
	"github.com/lixenwraith/darpan/hero"
	"github.com/lixenwraith/darpan/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the hero crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDARPAN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "darpan: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args, os.Stderr)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	mode, err := cfg.ColorMode()
	if err != nil {
		return err
	}
	if mode, err = terminal.ApplyColorMode(mode); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	sound := audio.NewSoundManager()
	h, err := mountHero(screen, cfg, sound, logger)
	if err != nil {
		return err
	}
	defer h.Unmount()

	logger.Info("darpan started",
		"mount", h.ID().String(),
		"color", mode.String(),
		"fps", cfg.FPS,
		"audio", sound.Enabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := h.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// soundDevice is the audio backend the hero plays cues through
type soundDevice interface {
	hero.Sound
	Initialize() error
	Enabled() bool
}

// mountHero opens audio when enabled and mounts the hero, audio is released if the mount fails
func mountHero(screen tcell.Screen, cfg config.Config, sound soundDevice, logger *slog.Logger) (*hero.Hero, error) {
	opts := []hero.Option{hero.WithLogger(logger)}
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the hero runs silent
			logger.Warn("audio disabled", "error", err)
		} else {
			opts = append(opts, hero.WithSound(sound))
		}
	}

	h, err := hero.Mount(screen, cfg, opts...)
	if err != nil {
		sound.Cleanup()
		return nil, err
	}
	return h, nil
}

// newLogger writes text records to the configured file, the terminal is in raw mode while mounted
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, func() { f.Close() }, nil
}
