// cmd/greenhouse/session.go
package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tamzrod/greenhouse-settings/internal/config"
	"github.com/tamzrod/greenhouse-settings/internal/console"
	"github.com/tamzrod/greenhouse-settings/internal/nvstore"
	"github.com/tamzrod/greenhouse-settings/internal/settings"
)

// session is one booted settings store plus the collaborators it owns.
type session struct {
	log     *zap.Logger
	store   *settings.Store
	closers []func() error
}

// openSession loads config, wires console + backing store, and boots the store.
func openSession(ctx context.Context, opts *rootOptions) (*session, error) {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if opts.dryRun {
		cfg.Store.Kind = config.StoreMemory
	}
	config.Normalize(cfg)

	log, err := buildLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	s := &session{log: log}

	// --------------------
	// Collaborators
	// --------------------

	port := opts.port
	if port == nil {
		p, closeConsole, err := console.Build(cfg.Console, log)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("console build failed: %w", err)
		}
		s.closers = append(s.closers, closeConsole)
		port = p
	}

	backing, closeStore, err := nvstore.Build(cfg.Store)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("store build failed (kind=%s): %w", cfg.Store.Kind, err)
	}
	s.closers = append(s.closers, closeStore)

	// --------------------
	// Boot
	// --------------------

	s.store = settings.New(backing, port,
		settings.WithLogger(log.Named("settings")),
		settings.WithDebug(cfg.Debug),
		settings.WithPromptTimeout(time.Duration(cfg.Console.PromptTimeoutMs)*time.Millisecond),
	)

	if err := s.store.Load(ctx); err != nil {
		s.close()
		return nil, err
	}

	return s, nil
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.log.Warn("close failed", zap.Error(err))
		}
	}
	s.closers = nil
	_ = s.log.Sync()
}

func buildLogger(l config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
