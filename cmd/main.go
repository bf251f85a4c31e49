package main

import (
	"anonpair/contract"
	"anonpair/domain"
	"anonpair/matchmaker"
	"anonpair/observability"
	"anonpair/repositories"
	"anonpair/runtime"
	"anonpair/runtime/workers"
	"anonpair/services"
	"anonpair/throttle"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the daemon lifecycle. Keeping
// the logic out of main ensures every defer (store close, sequence release)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := newLogger(config.LogLevel)

	// 2. Store & repositories
	lifecycle, err := runtime.Open(config.BadgerFilepath, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := lifecycle.Close(); err != nil {
			log.Error("Store close failed", "error", err)
		}
	}()

	sessions := repositories.NewSessionRepository(lifecycle.DB(), log)
	reports, err := repositories.NewReportRepository(lifecycle.DB(), log, config.ReportReasonMax)
	if err != nil {
		return err
	}
	defer func() {
		_ = reports.Close()
	}()

	// 3. Startup recovery: no event is processed against stale pairings.
	mm := matchmaker.NewMatchmaker(sessions, log)
	if err := lifecycle.Recover(mm); err != nil {
		return err
	}

	// 4. Services
	monitor := observability.NewMonitor()
	guard := throttle.NewGuard(config.MinSendInterval)
	transport := newConsole(os.Stdout, log)
	var operator contract.Operator
	if config.OperatorID != "" {
		operator = &consoleOperator{out: os.Stdout, id: config.OperatorID}
	}
	sessionService := services.NewSessionService(mm, reports, transport, operator, monitor, log)
	relayService := services.NewRelayService(mm, guard, transport, transport, monitor, log)

	// 5. Dispatcher & supervision
	events := make(chan domain.InboundEvent, config.BufferSize)
	dispatcher := runtime.NewDispatcher(events, sessionService, relayService, transport, monitor, log)
	reporter := workers.NewReporterWorker(monitor, config.StatsInterval, log)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(dispatcher, reporter)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go transport.ReadLoop(ctx, os.Stdin, events)

	log.Info("Accepting events", "store", config.BadgerFilepath)
	sup.Run(ctx)
	log.Info("Program stopped cleanly")

	return nil
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
