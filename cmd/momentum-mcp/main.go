package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/momentum/internal/api"
	"github.com/meltforce/momentum/internal/config"
	"github.com/meltforce/momentum/internal/mcp"
	"github.com/meltforce/momentum/internal/progress"
	"github.com/meltforce/momentum/internal/session"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("momentum-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if level, err := cfg.Log.SlogLevel(); err == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	sessions, err := session.OpenSQLite(cfg.Session.Dir)
	if err != nil {
		log.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	opts, err := progress.OptionsFromConfig(cfg.Progress)
	if err != nil {
		log.Error("invalid progress config", "error", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sessions, log)
	svc := progress.NewService(client, opts, log)

	s := mcp.New(client, svc, Version, log)
	log.Info("mcp server starting on stdio", "version", Version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
