package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthy-eats-backend/cmd/config"
	migration "healthy-eats-backend/cmd/database/migrate"
	"healthy-eats-backend/cmd/database/seed"
	"healthy-eats-backend/internal/utils"
	"healthy-eats-backend/internal/utils/logger"

	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()

	log, err := logger.New(logger.Config{
		Level:  utils.GetConfig("LOG_LEVEL"),
		Format: utils.GetConfig("LOG_FORMAT"),
	})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database migration complete")

	ctx := context.Background()
	if err := seed.Seed(ctx, db, log); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	rdb := config.ConnectRedis(log)
	if rdb != nil {
		defer rdb.Close()
	}

	app, err := config.NewApp(db, rdb, log)
	if err != nil {
		log.Fatal("failed to build app", zap.Error(err))
	}

	go func() {
		port := utils.GetConfig("APP_PORT")
		log.Info("server starting", zap.String("port", port))
		if err := app.Listen(":" + port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
}
