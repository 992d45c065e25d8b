package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"studyquiz/internal/cli"
	"studyquiz/internal/config"
	"studyquiz/internal/logger"
	"studyquiz/internal/opentdb"
)

func main() {
	cfg := config.Load()

	store := flag.String("store", cfg.Store, "session store: sqlite, redis or memory")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	redisURL := flag.String("redis", cfg.RedisURL, "Redis URL")
	importFile := flag.String("import", cfg.ImportFile, "question bank to import on startup (JSON or YAML)")
	reset := flag.Bool("reset", false, "discard the saved session before starting")
	flag.Parse()

	cfg.Store = *store
	cfg.DBPath = *dbPath
	cfg.RedisURL = *redisURL
	cfg.ImportFile = *importFile

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	var logOut io.Writer
	if logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := cli.OpenSession(ctx, cfg, log, cli.SessionOptions{Reset: *reset})
	if err != nil {
		log.Error().Err(err).Str("store", cfg.Store).Msg("open session failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer session.Close()

	trivia := opentdb.NewClient(&http.Client{Timeout: cfg.HTTPTimeout})
	opts := cli.Options{
		Controller:  session.Controller,
		Trivia:      trivia,
		TriviaCount: cfg.TriviaCount,
	}
	if err := cli.Run(ctx, os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
