package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"backoffice/internal/app"
	"backoffice/internal/config"
	"backoffice/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting seed", zap.String("database", cfg.Database.Path))

	catalog, err := app.Open(cfg, log)
	if err != nil {
		log.Fatal("open catalog", zap.Error(err))
	}
	defer func() { _ = catalog.Close() }()

	report, err := catalog.Seed(context.Background())
	if err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("users", report.Users),
		zap.Int("categories", report.Categories),
		zap.Int("tags", report.Tags),
		zap.Int("services", report.Services),
		zap.Int("products", report.Products),
		zap.Int("total", report.Total()),
	)
}
