package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"food_truck_tracker/internal/config"
	"food_truck_tracker/internal/logger"
	"food_truck_tracker/internal/repository"
	"food_truck_tracker/internal/routes"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to stdout and a rotating file
	if err := logger.Setup(logger.Options{File: cfg.LogFile, Level: cfg.LogLevel}); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database initialization failed")
	}
	store, err := repository.NewStore(db)
	if err != nil {
		logrus.WithError(err).Fatal("repository initialization failed")
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.SetupRouter(store, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithFields(logrus.Fields{"addr": srv.Addr, "driver": cfg.DBDriver}).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
