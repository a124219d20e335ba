package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"starauto/internal/app"
	"starauto/internal/app/server/api"
	"starauto/internal/config"
	"starauto/internal/docstore"
	"starauto/internal/infrastructure/migration"
	"starauto/internal/infrastructure/storage"
	"starauto/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	if err := run(conf, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := storage.Open(ctx, conf, migration.DefaultEngine, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Error("close database", slog.String("error", err.Error()))
		}
	}()

	factory := stores.Factory
	log.Info("document store ready",
		slog.String("mode", factory.Mode().String()),
		slog.String("driver", conf.DB.Driver),
		slog.String("json_path", conf.DB.JSONPath),
	)

	services := app.NewServices(factory, conf.Auth.Secret, conf.Auth.TokenTTL, log)
	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(factory, services, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if stores.Monitor != nil {
		stores.Monitor.OnChange(func(connected bool) {
			if connected != (factory.Mode() == docstore.ModeDriver) {
				log.Warn("database connectivity differs from store mode; POST /api/admin/store/reconfigure to switch",
					slog.Bool("connected", connected),
					slog.String("mode", factory.Mode().String()),
				)
			}
		})
		g.Go(func() error {
			return stores.Monitor.Run(gctx)
		})
	}

	g.Go(func() error {
		log.Info("starting server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
