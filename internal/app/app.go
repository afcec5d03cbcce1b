// Package app wires the stores, the chat client and the command surface
// from resolved settings.
package app

import (
	"fmt"
	"os"

	"github.com/nulzo/aimind/internal/commands"
	"github.com/nulzo/aimind/internal/config"
	"github.com/nulzo/aimind/internal/llm"
	"github.com/nulzo/aimind/internal/store"
	"github.com/nulzo/aimind/internal/store/configstore"
	"github.com/nulzo/aimind/internal/store/sqlite"
	"go.uber.org/zap"
)

type App struct {
	Service commands.Service
	Configs *configstore.Store
	Repo    store.Repository
}

// Bootstrap creates the data dir, opens the recents database and makes sure
// a provider document exists.
func Bootstrap(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", cfg.Data.DBPath())
	repo, err := sqlite.NewSQLiteStorage(dsn, logger)
	if err != nil {
		return nil, err
	}

	configs := configstore.New(cfg.Data.ConfigPath(), logger)
	aiCfg, err := configs.Load()
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	for _, p := range aiCfg.Providers {
		if p.APIKey != "" {
			continue
		}
		if d, err := llm.Get(p.Kind); err == nil && d.RequiresKey() {
			logger.Warn("Provider has no API key", zap.String("provider_id", p.ID), zap.String("kind", p.Kind))
		}
	}

	logger.Info("Providers loaded",
		zap.Int("count", len(aiCfg.Providers)),
		zap.String("current", aiCfg.CurrentProvider),
		zap.String("path", configs.Path()),
	)

	client := llm.NewClient(cfg.LLM.Timeout, logger)
	svc := commands.NewService(logger, configs, client, repo, cfg.Files.MaxRecent)

	return &App{Service: svc, Configs: configs, Repo: repo}, nil
}

func (a *App) Close() error {
	return a.Repo.Close()
}
