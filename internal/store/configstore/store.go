// Package configstore persists the provider registry as a single JSON
// document. Every operation is a full load/mutate/save round trip; there is
// no in-memory cache and no file locking, so concurrent writers resolve as
// last-writer-wins.
package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/nulzo/aimind/internal/llm"
	"go.uber.org/zap"
)

const FileName = "config.json"

// Store reads and writes the AI provider document at a fixed path.
type Store struct {
	path   string
	logger *zap.Logger
}

// New returns a store for the document at path.
func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// DefaultPath resolves ~/.aimind/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", domain.IOError("cannot find home directory", err)
	}
	return filepath.Join(home, ".aimind", FileName), nil
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted document, writing the default one on first run.
func (s *Store) Load() (domain.AIConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := domain.DefaultAIConfig()
			if err := s.Save(cfg); err != nil {
				return domain.AIConfig{}, err
			}
			s.logger.Info("Created default AI config", zap.String("path", s.path))
			return cfg, nil
		}
		return domain.AIConfig{}, domain.IOError("failed to read config", err)
	}

	var cfg domain.AIConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.AIConfig{}, domain.ParseError("failed to parse config", err)
	}
	if err := checkShape(cfg); err != nil {
		return domain.AIConfig{}, domain.ParseError("failed to parse config", err)
	}
	return cfg, nil
}

// checkShape rejects documents that break the provider list invariants.
func checkShape(cfg domain.AIConfig) error {
	if len(cfg.Providers) == 0 {
		return errors.New("providers must not be empty")
	}
	for i, p := range cfg.Providers {
		if err := domain.ValidateProvider(p); err != nil {
			return fmt.Errorf("provider %d: %w", i, err)
		}
	}
	if cfg.Find(cfg.CurrentProvider) < 0 {
		return fmt.Errorf("current_provider %q does not match any provider", cfg.CurrentProvider)
	}
	return nil
}

// Save writes the whole document, creating parent directories as needed.
// The write goes through a temp file and rename so a crash never leaves a
// truncated document behind.
func (s *Store) Save(cfg domain.AIConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return domain.IOError("failed to create config dir", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return domain.IOError("failed to serialize config", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return domain.IOError("failed to write config", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return domain.IOError("failed to write config", err)
	}
	return nil
}

// Provider returns the provider with the given id.
func (s *Store) Provider(id string) (domain.ProviderConfig, error) {
	cfg, err := s.Load()
	if err != nil {
		return domain.ProviderConfig{}, err
	}
	p, ok := cfg.Provider(id)
	if !ok {
		return domain.ProviderConfig{}, domain.NotFoundError(fmt.Sprintf("AI provider not found: %s", id))
	}
	return p, nil
}

// CurrentProvider returns the provider referenced by current_provider.
func (s *Store) CurrentProvider() (domain.ProviderConfig, error) {
	cfg, err := s.Load()
	if err != nil {
		return domain.ProviderConfig{}, err
	}
	p, ok := cfg.Provider(cfg.CurrentProvider)
	if !ok {
		return domain.ProviderConfig{}, domain.NotFoundError(fmt.Sprintf("AI provider not found: %s", cfg.CurrentProvider))
	}
	return p, nil
}

// UpsertProvider replaces the provider with the same id in place, or appends it.
func (s *Store) UpsertProvider(p domain.ProviderConfig) error {
	if err := domain.ValidateProvider(p); err != nil {
		return err
	}
	p, err := llm.ApplyDefaults(p)
	if err != nil {
		return err
	}

	cfg, err := s.Load()
	if err != nil {
		return err
	}

	if i := cfg.Find(p.ID); i >= 0 {
		cfg.Providers[i] = p
	} else {
		cfg.Providers = append(cfg.Providers, p)
	}

	if err := s.Save(cfg); err != nil {
		return err
	}
	s.logger.Info("Saved AI provider", zap.String("provider_id", p.ID), zap.String("kind", p.Kind))
	return nil
}

// DeleteProvider removes a provider. The last remaining provider cannot be
// removed, and current_provider falls back to the first remaining entry.
func (s *Store) DeleteProvider(id string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	if len(cfg.Providers) <= 1 {
		return domain.ValidationError("at least one provider required")
	}

	i := cfg.Find(id)
	if i < 0 {
		return domain.NotFoundError(fmt.Sprintf("AI provider not found: %s", id))
	}
	cfg.Providers = append(cfg.Providers[:i], cfg.Providers[i+1:]...)

	if cfg.CurrentProvider == id {
		cfg.CurrentProvider = ""
		if len(cfg.Providers) > 0 {
			cfg.CurrentProvider = cfg.Providers[0].ID
		}
	}

	if err := s.Save(cfg); err != nil {
		return err
	}
	s.logger.Info("Deleted AI provider",
		zap.String("provider_id", id),
		zap.String("current_provider", cfg.CurrentProvider),
	)
	return nil
}

// SetCurrentProvider points current_provider at an existing provider.
func (s *Store) SetCurrentProvider(id string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	if cfg.Find(id) < 0 {
		return domain.NotFoundError(fmt.Sprintf("AI provider not found: %s", id))
	}
	cfg.CurrentProvider = id

	return s.Save(cfg)
}
