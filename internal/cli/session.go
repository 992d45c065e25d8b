package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"studyquiz/internal/config"
	"studyquiz/internal/quiz"
	"studyquiz/internal/quiz/redisstore"
	"studyquiz/internal/quiz/sqlite"
)

var ErrUnknownStore = errors.New("unknown session store")

// Session bundles a controller with the store it persists into.
type Session struct {
	Controller *quiz.Controller
	Persister  *quiz.Persister
	closeStore func() error
}

func (s *Session) Close() error {
	if s == nil || s.closeStore == nil {
		return nil
	}
	return s.closeStore()
}

type SessionOptions struct {
	// Reset discards any saved session before the controller loads.
	Reset bool
}

// OpenSession opens the configured store, resumes or starts a session and applies
// the startup import file when one is configured.
func OpenSession(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts SessionOptions) (*Session, error) {
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	persister := quiz.NewPersister(store, cfg.StorageKey, log)
	if opts.Reset {
		if err := persister.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("reset saved session failed")
		}
	}

	session := &Session{
		Controller: quiz.NewController(persister, log),
		Persister:  persister,
		closeStore: closeStore,
	}

	if cfg.ImportFile != "" {
		if err := importStartupFile(ctx, session.Controller, cfg.ImportFile); err != nil {
			log.Warn().Err(err).Str("path", cfg.ImportFile).Msg("startup import failed")
		}
	}
	return session, nil
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (quiz.Store, func() error, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return quiz.NewMemoryStore(), nil, nil
	case config.StoreRedis:
		store, err := redisstore.Connect(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StoreSQLite, "":
		store, err := sqlite.NewStore(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}

func importStartupFile(ctx context.Context, ctrl *quiz.Controller, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = ctrl.ImportReader(ctx, file, quiz.FormatForPath(path))
	return err
}
