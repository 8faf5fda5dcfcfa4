package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"oja/cmd"
	"oja/internal/adapters/out/postgres"
	"oja/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configFile := flag.String("config", os.Getenv("OJA_CONFIG_FILE"), "optional YAML configuration file")
	flag.Parse()

	configs, err := cmd.Load(*configFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, logCloser, err := logging.New("oja", configs.Log)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, configs, logger)
	stop()
	_ = logCloser.Close()
	if err != nil {
		log.Fatalf("Service stopped: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := postgres.Open(ctx, configs.DB.DSN(), configs.DB.Pool())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := postgres.Close(gormDB); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	if err := postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateHTTPServer(ctx)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLogLevel(configs.Log.Level))

	return startWebServer(ctx, e, configs.HTTP, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, configs cmd.HTTPConfig, logger *slog.Logger) error {
	addr := fmt.Sprintf("0.0.0.0:%s", configs.Port)
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()
	logger.Info("HTTP server started", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level string) log.Lvl {
	parsed, err := logging.ParseLevel(level)
	if err != nil {
		return log.INFO
	}
	switch {
	case parsed <= slog.LevelDebug:
		return log.DEBUG
	case parsed <= slog.LevelInfo:
		return log.INFO
	case parsed <= slog.LevelWarn:
		return log.WARN
	}
	return log.ERROR
}
