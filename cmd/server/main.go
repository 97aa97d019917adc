package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice/docs"
	"backoffice/internal/app"
	"backoffice/internal/config"
	"backoffice/internal/logger"
)

// @title Catalog Back-Office API
// @version 1.0
// @description Catalog back-office host: products, services, categories, tags, users, pricing plans and options behind one envelope.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Prices leave the API as JSON numbers, like the REAL columns they are read from.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Swagger.Host != "" {
		docs.SwaggerInfo.Host = cfg.Swagger.Host
	}

	catalog, err := app.Open(cfg, log)
	if err != nil {
		log.Error("open catalog", zap.Error(err))
		return err
	}
	defer func() {
		if err := catalog.Close(); err != nil {
			log.Warn("close catalog", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Seed {
		report, err := catalog.Seed(ctx)
		if err != nil {
			log.Error("seed catalog", zap.Error(err))
			return err
		}
		log.Info("seed finished", zap.Int("created", report.Total()))
	}

	return app.New(catalog).Run(ctx)
}
