// Command pir-sensor polls a PIR motion sensor on a GPIO input and prints a
// line for every poll that finds motion.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sweeney/pir-sensor/internal/config"
	"github.com/sweeney/pir-sensor/internal/gpio"
	"github.com/sweeney/pir-sensor/internal/notify"
	"github.com/sweeney/pir-sensor/internal/poller"
	"github.com/sweeney/pir-sensor/internal/status"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	setupLogging(cfg.LogLevel, os.Stderr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if err := run(cfg, os.Stdout, sigCh); err != nil {
		var initErr *gpio.InitError
		if errors.As(err, &initErr) {
			log.Fatal().Err(initErr.Err).Str("backend", initErr.Backend).Int("pin", initErr.Pin).
				Msg("cannot acquire sensor line")
		}
		log.Fatal().Err(err).Msg("fatal")
	}
}

func setupLogging(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
}

func run(cfg config.Config, out io.Writer, sig <-chan os.Signal) error {
	// Initialize GPIO
	reader, err := gpio.Open(cfg.LineConfig())
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Warn().Err(err).Msg("close gpio")
		}
	}()

	// Print state mode
	if cfg.PrintState {
		lvl, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		fmt.Fprintf(out, "GPIO%d: %s\n", cfg.Pin, lvl)
		return nil
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		Pin:     cfg.Pin,
		Pull:    cfg.Pull,
		Backend: cfg.Backend,
		PollMs:  cfg.PollInterval().Milliseconds(),
	})

	console := notify.NewConsole(out)
	if err := console.Active(); err != nil {
		return fmt.Errorf("write startup message: %w", err)
	}

	log.Info().
		Int("pin", cfg.Pin).
		Str("pull", cfg.Pull).
		Str("backend", cfg.Backend).
		Dur("poll", cfg.PollInterval()).
		Msg("started")

	err = poller.New(reader, console, tracker, cfg.PollInterval()).Run(sig)
	logSummary(tracker.Snapshot())
	return err
}

func logSummary(snap status.Snapshot) {
	log.Info().
		Int("polls", snap.Counts.Polls).
		Int("detections", snap.Counts.Detections).
		Int("read_faults", snap.Counts.ReadFaults).
		Dur("uptime", snap.Uptime()).
		Msg("stopped")
}
