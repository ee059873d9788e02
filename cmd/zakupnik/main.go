package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mpawlak/zakupnik/internal/app"
	"github.com/mpawlak/zakupnik/internal/auth"
	"github.com/mpawlak/zakupnik/internal/config"
	"github.com/mpawlak/zakupnik/internal/session"
	"github.com/mpawlak/zakupnik/internal/storage/sqlite"
	"github.com/mpawlak/zakupnik/internal/ui"
	"github.com/mpawlak/zakupnik/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	sessions := session.NewFileStore(cfg.SessionPath)
	tokens := auth.NewTokenManager(cfg.SessionSecret)
	terminal := ui.NewTerminal(os.Stdin, os.Stdout)

	a := app.New(store, sessions, tokens, terminal, slog.Default())
	if err := a.Run(context.Background()); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}
