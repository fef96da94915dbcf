package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/renancoelho1710/organizofinanceiro/internal/config"
	"github.com/renancoelho1710/organizofinanceiro/internal/database"
	"github.com/renancoelho1710/organizofinanceiro/internal/router"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.Log.Level)

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	s := store.New(db)

	// seed demo data
	if cfg.App.SeedDemoData {
		if err := database.Seed(s, cfg.App.DemoUsername); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	// setup router
	r := router.Setup(cfg, s, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
