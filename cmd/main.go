package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "sugar_tracker/docs"
	"sugar_tracker/internal/cache"
	"sugar_tracker/internal/config"
	"sugar_tracker/internal/handlers"
	"sugar_tracker/internal/logger"
	"sugar_tracker/internal/repository"
	"sugar_tracker/internal/repository/db"
	"sugar_tracker/internal/server"
	"sugar_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const configDir = "configs"

// @title                       Sugar Tracker API
// @version                     1.0
// @description                 Blood sugar journal: measurements, period analysis and severity histograms.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load(configDir)
	if err != nil {
		// logger settings come from the config, so fall back to defaults to report this
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	imageCache := openCache(ctx, cfg, log)
	defer func() { _ = imageCache.Close() }()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		Cache:      imageCache,
		Log:        log,
	})
	apiHandler := handlers.NewHandler(services, log)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	go func() {
		log.Infow("http_server_started", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", cfg.DB.Path)
	return db.InitDB(cfg.DB.Path)
}

// openCache connects to Redis when configured; otherwise histograms are rendered on every request.
func openCache(ctx context.Context, cfg config.Config, log *logger.Logger) cache.ImageCache {
	if cfg.Redis.Addr == "" {
		log.Infow("redis.addr not set; histogram cache disabled")
		return cache.Nop{}
	}
	rc, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	if err != nil {
		log.Warnw("redis unavailable; histogram cache disabled", "addr", cfg.Redis.Addr, "err", err)
		return cache.Nop{}
	}
	log.Infow("histogram cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	return rc
}
