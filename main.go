package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"summoners-school/config"
	"summoners-school/controllers"
	"summoners-school/environment"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.AppEnv == config.EnvDEV {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// serve runs the server until ctx is done; PRD runs TLS
func serve(ctx context.Context, cfg config.Config, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		switch cfg.AppEnv {
		case config.EnvPRD:
			err = srv.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
		default:
			err = srv.ListenAndServe()
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	if err = cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err = controllers.InitValidators(); err != nil {
		logger.Fatal("registering validators", zap.Error(err))
	}

	// Connect to main database here (mongoDB), analytics if enabled
	env, err := environment.Initialize(cfg, logger)
	if err != nil {
		logger.Fatal("opening stores", zap.Error(err))
	}
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go env.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           newRouter(cfg, env.Controllers(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("summoners-school running...",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", srv.Addr),
		zap.Bool("analytics", env.Tracker.Enabled()))

	if err = serve(ctx, cfg, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", zap.Error(err))
	}
}
