package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"worktrack/internal/cache"
	"worktrack/internal/client"
	"worktrack/internal/config"
	"worktrack/internal/handler"
	"worktrack/internal/httpserver"
	"worktrack/internal/notify"
	"worktrack/internal/repository"
	"worktrack/internal/service"
	"worktrack/pkg/db"
	"worktrack/pkg/logger"
	"worktrack/pkg/mq"
	"worktrack/pkg/redis"
	"worktrack/pkg/util"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting workplan board service...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("task_service", cfg.Upstream.TaskServiceURL),
		zap.String("staff_service", cfg.Upstream.StaffServiceURL),
	)

	// DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis
	rdb := redis.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	// MQ publisher for error notifications
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	notifyWindow := time.Duration(cfg.Cache.NotifyWindowSeconds) * time.Second
	if notifyWindow == 0 {
		notifyWindow = time.Minute
	}
	deduper := util.NewDeduper(rdb, notifyWindow, log)
	notifier := notify.NewMQNotifier(publisher, deduper, log)

	// Upstream clients
	timeout := time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
	taskClient := client.NewTaskClient(cfg.Upstream.TaskServiceURL, timeout)
	staffClient := client.NewStaffClient(cfg.Upstream.StaffServiceURL, timeout)

	snapshotTTL := time.Duration(cfg.Cache.SnapshotTTLSeconds) * time.Second
	snapshots := cache.NewSnapshotCache(rdb, snapshotTTL, log)

	filterRepo := repository.NewFilterRepository(dbConn, log)

	workplanSvc := service.NewWorkplanService(
		taskClient,
		staffClient,
		filterRepo,
		snapshots,
		notifier,
		log,
	)

	workplanHandler := handler.NewWorkplanHandler(workplanSvc, log)
	router := httpserver.NewRouter(workplanHandler, log, dbConn, rdb, publisher, cfg.JWT.Secret)

	port := cfg.Server.Port
	if port == "" {
		port = "8084"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("workplan board service is fully initialized and running",
		zap.String("http_port", port),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workplan board service gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("workplan board service shutdown complete")
}
