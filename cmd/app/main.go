package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog/cmd"
	httpin "catalog/internal/adapters/in/http"
	"catalog/internal/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	log, err := logger.New(config.LogLevel, config.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync(log) }()

	app := cmd.NewCompositionRoot(config, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, &app, config, log)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, log *zap.Logger) error {
	e := httpin.NewEcho(log)
	app.CreateHTTPServer().Register(e)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server started", zap.String("address", config.HTTPAddress()))
		if err := e.Start(config.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Duration("timeout", config.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
