// Package main is the entry point for the NIST SP 800-22 battery runner.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kestrelstat/sp80022/internal/config"
	"github.com/kestrelstat/sp80022/internal/metrics"
	"github.com/kestrelstat/sp80022/internal/middleware"
	"github.com/kestrelstat/sp80022/internal/nist"
	"github.com/kestrelstat/sp80022/internal/service"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("application failed")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx, requestID := middleware.NewRequestContext(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("mode", cfg.Mode).
		Str("test_name", cfg.TestName).
		Msg("starting NIST SP 800-22 battery run")

	bits, err := loadSequence(cfg)
	if err != nil {
		return fmt.Errorf("failed to load input sequence: %w", err)
	}

	runner := service.NewRunner()

	if cfg.TestName != "" {
		result, err := nist.RunByNameBattery(cfg.TestName, bits, runner.Battery, true)
		if err != nil {
			return fmt.Errorf("failed to run test %q: %w", cfg.TestName, err)
		}
		return printJSON(result)
	}

	report, err := runner.Run(ctx, bits)
	if err != nil {
		return fmt.Errorf("battery run failed: %w", err)
	}
	if err := printJSON(report); err != nil {
		return err
	}

	if cfg.MetricsEnabled {
		text, err := metrics.GatherText()
		if err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
		fmt.Fprint(os.Stderr, text)
	}

	return nil
}

// loadSequence reads the bit sequence per cfg.Mode: "file" packs the
// raw bytes of cfg.InputPath, "random" generates cfg.RandomLen bits
// from a seeded PRNG for quick smoke testing.
func loadSequence(cfg *config.Config) (nist.BitSequence, error) {
	switch cfg.Mode {
	case "file":
		data, err := os.ReadFile(cfg.InputPath)
		if err != nil {
			return nist.BitSequence{}, fmt.Errorf("read %s: %w", cfg.InputPath, err)
		}
		return nist.PackSequence(data), nil
	case "random":
		bits := make([]int8, cfg.RandomLen)
		rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // test-data generator, not cryptographic
		for i := range bits {
			bits[i] = int8(rng.Intn(2))
		}
		return nist.NewBitSequence(bits)
	default:
		return nist.BitSequence{}, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// setupLogging configures the zerolog logger.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
