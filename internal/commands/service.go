package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/nulzo/aimind/internal/mindmap"
	"github.com/nulzo/aimind/internal/store"
	"github.com/nulzo/aimind/internal/store/model"
	"go.uber.org/zap"
)

// ConfigStore is the provider registry persisted on disk.
type ConfigStore interface {
	Load() (domain.AIConfig, error)
	Provider(id string) (domain.ProviderConfig, error)
	CurrentProvider() (domain.ProviderConfig, error)
	UpsertProvider(p domain.ProviderConfig) error
	DeleteProvider(id string) error
	SetCurrentProvider(id string) error
}

// ChatClient sends one prompt to one provider.
type ChatClient interface {
	Chat(ctx context.Context, p domain.ProviderConfig, prompt string) (string, error)
}

// Service is the set of entry points the UI calls. It holds no state of its
// own: every call reloads the config document.
type Service interface {
	Chat(ctx context.Context, prompt, providerID string) (string, error)
	ExpandNode(ctx context.Context, nodeContent, providerID string) ([]string, error)
	AnalyzeMindmap(ctx context.Context, data json.RawMessage, providerID string) (map[string]interface{}, error)

	GetConfigs(ctx context.Context) (domain.AIConfig, error)
	SaveProviderConfig(ctx context.Context, p domain.ProviderConfig) error
	DeleteProviderConfig(ctx context.Context, id string) error
	SetCurrentProvider(ctx context.Context, id string) error

	SaveMindmap(ctx context.Context, data json.RawMessage, path string) (string, error)
	LoadMindmap(ctx context.Context, path string) (json.RawMessage, error)
	RecentFiles(ctx context.Context) ([]model.RecentFile, error)
	RemoveRecentFile(ctx context.Context, path string) error
	ClearRecentFiles(ctx context.Context) error
}

type service struct {
	logger    *zap.Logger
	configs   ConfigStore
	client    ChatClient
	repo      store.Repository
	maxRecent int
}

// NewService wires the command surface. repo may be nil, in which case
// recent files are not tracked.
func NewService(logger *zap.Logger, configs ConfigStore, client ChatClient, repo store.Repository, maxRecent int) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRecent <= 0 {
		maxRecent = 10
	}
	return &service{
		logger:    logger,
		configs:   configs,
		client:    client,
		repo:      repo,
		maxRecent: maxRecent,
	}
}

// resolveProvider treats an empty id as "the current provider".
func (s *service) resolveProvider(providerID string) (domain.ProviderConfig, error) {
	if providerID == "" {
		return s.configs.CurrentProvider()
	}
	return s.configs.Provider(providerID)
}

func (s *service) Chat(ctx context.Context, prompt, providerID string) (string, error) {
	p, err := s.resolveProvider(providerID)
	if err != nil {
		return "", err
	}
	return s.client.Chat(ctx, p, prompt)
}

func (s *service) ExpandNode(ctx context.Context, nodeContent, providerID string) ([]string, error) {
	reply, err := s.Chat(ctx, mindmap.ExpandPrompt(nodeContent), providerID)
	if err != nil {
		return nil, err
	}

	nodes := mindmap.ParseSuggestions(reply)
	s.logger.Debug("Expanded node",
		zap.String("provider_id", providerID),
		zap.Int("suggestions", len(nodes)),
	)
	return nodes, nil
}

// AnalyzeMindmap is a placeholder: it returns a fixed result without calling
// any provider.
func (s *service) AnalyzeMindmap(ctx context.Context, data json.RawMessage, providerID string) (map[string]interface{}, error) {
	return map[string]interface{}{
		"completeness": 50,
		"suggestions":  []string{},
	}, nil
}

func (s *service) GetConfigs(ctx context.Context) (domain.AIConfig, error) {
	return s.configs.Load()
}

func (s *service) SaveProviderConfig(ctx context.Context, p domain.ProviderConfig) error {
	return s.configs.UpsertProvider(p)
}

func (s *service) DeleteProviderConfig(ctx context.Context, id string) error {
	return s.configs.DeleteProvider(id)
}

func (s *service) SetCurrentProvider(ctx context.Context, id string) error {
	return s.configs.SetCurrentProvider(id)
}

func (s *service) SaveMindmap(ctx context.Context, data json.RawMessage, path string) (string, error) {
	saved, err := mindmap.SaveDocument(data, path)
	if err != nil {
		return "", err
	}
	s.touchRecent(ctx, saved)
	return saved, nil
}

func (s *service) LoadMindmap(ctx context.Context, path string) (json.RawMessage, error) {
	doc, err := mindmap.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	s.touchRecent(ctx, path)
	return doc, nil
}

func (s *service) RecentFiles(ctx context.Context) ([]model.RecentFile, error) {
	if s.repo == nil {
		return []model.RecentFile{}, nil
	}
	files, err := s.repo.RecentFiles().List(ctx, s.maxRecent)
	if err != nil {
		return nil, domain.IOError("failed to list recent files", err)
	}
	return files, nil
}

// RemoveRecentFile drops path from the recent-files list. The document itself
// is left alone.
func (s *service) RemoveRecentFile(ctx context.Context, path string) error {
	if path == "" {
		return domain.ValidationError("path is required")
	}
	if s.repo == nil {
		return nil
	}
	if err := s.repo.RecentFiles().Remove(ctx, path); err != nil {
		return domain.IOError("failed to remove recent file", err)
	}
	s.logger.Debug("Removed recent file", zap.String("path", path))
	return nil
}

func (s *service) ClearRecentFiles(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.RecentFiles().Clear(ctx); err != nil {
		return domain.IOError("failed to clear recent files", err)
	}
	return nil
}

// touchRecent records path in the recent-files list. Failures are logged
// only; they never fail the save or load that triggered them.
func (s *service) touchRecent(ctx context.Context, path string) {
	if s.repo == nil {
		return
	}

	file := &model.RecentFile{
		ID:       uuid.NewString(),
		Path:     path,
		Title:    mindmap.Title(path),
		OpenedAt: time.Now().UTC(),
	}

	err := s.repo.WithTx(ctx, func(repo store.Repository) error {
		if err := repo.RecentFiles().Touch(ctx, file); err != nil {
			return err
		}
		return repo.RecentFiles().Prune(ctx, s.maxRecent)
	})
	if err != nil {
		s.logger.Warn("Failed to record recent file", zap.String("path", path), zap.Error(err))
	}
}
