package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"AmISober/internal/catalog"
	"AmISober/internal/cliparse"
	"AmISober/internal/config"
	"AmISober/internal/input"
	"AmISober/internal/logging"
	"AmISober/internal/model"
	"AmISober/internal/notifier"
	"AmISober/internal/scheduler"
	"AmISober/internal/verdict"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := cliparse.ParseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "amisober: %v\n", err)
		return 2
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "amisober: load config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "amisober: config validation: %v\n", err)
		return 1
	}

	logger := logging.New(stderr, cfg.Log.Level)
	logger.Debug().Str("command", opts.Command).Str("config", opts.ConfigPath).Msg("starting")

	if opts.Command == cliparse.CommandDrinks {
		fmt.Fprint(stdout, notifier.FormatCatalog(catalog.All()))
		return 0
	}

	raw := cfg.Profile.RawInput()
	opts.Apply(&raw)
	in, err := input.Normalize(raw)
	if err != nil {
		logger.Error().Err(err).Msg("invalid input")
		return 1
	}

	switch opts.Command {
	case cliparse.CommandTable:
		fmt.Fprint(stdout, notifier.FormatProjection(in, verdict.Project(in)))
	case cliparse.CommandWatch:
		if err := watch(ctx, cfg, in, stdout, logger); err != nil {
			logger.Error().Err(err).Msg("watch failed")
			return 1
		}
	default:
		fmt.Fprint(stdout, notifier.FormatReport(verdict.Evaluate(in)))
	}
	return 0
}

func watch(ctx context.Context, cfg *config.Config, in model.EstimationInput, out io.Writer, logger zerolog.Logger) error {
	var sender notifier.Sender
	if cfg.TelegramEnabled() {
		sender = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger)
		logger.Info().Msg("telegram notifications enabled")
	}

	sched := scheduler.NewScheduler(ctx, in, sender, out, logger)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		return err
	}

	// report the starting point right away
	sched.Tick()
	select {
	case <-sched.Done():
		return nil
	default:
	}

	sched.Start()
	defer sched.Stop()
	logger.Info().Str("cron", cfg.Watch.Cron).Msg("watching, press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received, stopping")
	case <-sched.Done():
	}
	return nil
}
