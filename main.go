package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"payadmin-backend/config"
	"payadmin-backend/internal/api"
	"payadmin-backend/internal/database"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/session"
	"payadmin-backend/pkg/logger"
)

// @title payadmin-backend API
// @version 1.0
// @description Admin panel backend for the payment automation service.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if _, err := database.Connect(cfg.DBPath); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.ConnectRedis(context.Background(), cfg); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	client := remote.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	mgr := session.NewManager(client, store, session.Options{
		GeoLookupURL: cfg.GeoLookupURL,
		Revalidate:   cfg.RevalidateOnRestore,
	})
	defer mgr.Wait()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mgr.Restore(ctx); err != nil {
		logger.Log.Warn("Failed to restore session", zap.Error(err))
	}
	logger.Log.Info("Session state", zap.Stringer("state", mgr.State()))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(api.Deps{Config: cfg, API: client, Sessions: mgr}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server listening", zap.String("addr", cfg.ListenAddr), zap.String("api", client.BaseURL()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newStore(cfg *config.Config) (session.Store, error) {
	switch cfg.StorageDriver {
	case "sqlite":
		return session.NewDBStore(database.DB), nil
	case "redis":
		return session.NewRedisStore(database.RedisClient), nil
	case "file":
		return session.NewFileStore(cfg.SessionFile), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
