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
	"studyquiz/internal/tui"
)

func main() {
	cfg := config.Load()

	store := flag.String("store", cfg.Store, "session store: sqlite, redis or memory")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	redisURL := flag.String("redis", cfg.RedisURL, "Redis URL")
	importFile := flag.String("import", cfg.ImportFile, "question bank to import on startup (JSON or YAML)")
	reset := flag.Bool("reset", false, "discard the saved session before starting")
	uiMode := flag.String("ui", "auto", "front end: auto, tui or plain")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colors")
	flag.Parse()

	cfg.Store = *store
	cfg.DBPath = *dbPath
	cfg.RedisURL = *redisURL
	cfg.ImportFile = *importFile

	decision, err := cli.ResolveUIMode(*uiMode, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if decision.Warning != "" {
		fmt.Fprintln(os.Stderr, decision.Warning)
	}

	// The full-screen UI owns the terminal, so logs go to LOG_FILE or nowhere.
	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	var logOut io.Writer
	switch {
	case logFile != nil:
		defer logFile.Close()
		logOut = logFile
	case decision.Interactive:
		logOut = io.Discard
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

	if decision.Interactive {
		err = tui.Run(ctx, session.Controller, os.Stdin, os.Stdout, tui.Options{
			NoColor:     *noColor,
			Trivia:      trivia,
			TriviaCount: cfg.TriviaCount,
		})
	} else {
		err = cli.Run(ctx, os.Stdin, os.Stdout, cli.Options{
			Controller:  session.Controller,
			Trivia:      trivia,
			TriviaCount: cfg.TriviaCount,
		})
	}
	if err != nil {
		log.Error().Err(err).Msg("front end exited with error")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
