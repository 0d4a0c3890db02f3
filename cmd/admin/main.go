package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/mmynk/camptrack/internal/auth"
	"github.com/mmynk/camptrack/internal/config"
	"github.com/mmynk/camptrack/internal/report"
	"github.com/mmynk/camptrack/internal/storage/sqlite"
	"github.com/mmynk/camptrack/pkg/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("CAMPTRACK_CONFIG"))
	errAndDie(err)
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := sqlite.New(cfg.DatabasePath)
	errAndDie(err)
	defer store.Close()

	cli := commandLine{
		store:  store,
		engine: report.NewEngine(store),
		jwt:    auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			slog.Error("admin command failed", "error", err)
		}
		store.Close()
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		slog.Error("admin setup failed", "error", err)
		os.Exit(1)
	}
}
