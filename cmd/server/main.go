package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/api/handler"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/api/router"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/scheduler"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/service"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/database"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/jwt"
	applogger "github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/logger"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/redis"
)

func main() {
	// 1. configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("access underlying sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// 4. redis, optional: a failed connection degrades token revocation
	// to no-op instead of blocking startup
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token revocation disabled", zap.Error(err))
		rdb = nil
	}

	// 5. dependency wiring: repository → service → handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 6. background jobs
	var jobs *scheduler.Manager
	if cfg.Scheduler.Enabled {
		jobs, err = scheduler.NewManager(cfg, repo, logger)
		if err != nil {
			logger.Fatal("scheduler init failed", zap.Error(err))
		}
		jobs.Start()
	}

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if jobs != nil {
		jobs.Stop()
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
