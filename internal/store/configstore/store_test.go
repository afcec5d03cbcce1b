package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), ".aimind", FileName), nil)
}

func provider(id string) domain.ProviderConfig {
	return domain.ProviderConfig{
		ID:      id,
		Name:    "Provider " + id,
		Kind:    "openai",
		APIKey:  "sk-" + id,
		BaseURL: "https://example.com/v1",
		Model:   "gpt-4o",
		Enabled: true,
	}
}

func assertCurrentValid(t *testing.T, cfg domain.AIConfig) {
	t.Helper()
	_, ok := cfg.Provider(cfg.CurrentProvider)
	assert.True(t, ok, "current_provider %q must reference an existing provider", cfg.CurrentProvider)
}

func TestLoad_BootstrapsDefault(t *testing.T) {
	s := newStore(t)

	cfg, err := s.Load()
	require.NoError(t, err)

	require.Len(t, cfg.Providers, 1)
	p := cfg.Providers[0]
	assert.Equal(t, "openai-default", p.ID)
	assert.Equal(t, "openai", p.Kind)
	assert.Equal(t, "gpt-4o-mini", p.Model)
	assert.Equal(t, "https://api.openai.com/v1", p.BaseURL)
	assert.Empty(t, p.APIKey)
	assert.True(t, p.Enabled)
	assert.Equal(t, 0.7, p.TemperatureOrDefault())
	assert.Equal(t, 2000, p.MaxTokensOrDefault())
	assert.Equal(t, "openai-default", cfg.CurrentProvider)

	// persisted with the on-disk field names
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "openai-default", raw["current_provider"])
	first := raw["providers"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "openai", first["type"])
	assert.Equal(t, float64(2000), first["max_tokens"])
}

func TestLoad_ParseError(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o600))

	_, err := s.Load()
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestLoad_WrongShapeIsParseError(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"providers not a list", `{"providers": "nope"}`},
		{"providers missing", `{"current_provider": "a"}`},
		{"providers empty", `{"providers": [], "current_provider": ""}`},
		{"current points nowhere", `{"providers": [{"id": "a", "type": "openai"}], "current_provider": "ghost"}`},
		{"provider without id or type", `{"providers": [{}], "current_provider": ""}`},
		{"provider with bad temperature", `{"providers": [{"id": "a", "type": "openai", "temperature": 9}], "current_provider": "a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.doc), 0o600))

			_, err := s.Load()
			assert.True(t, errors.Is(err, domain.ErrParse), "got %v", err)

			// the broken document is left for the user to fix
			data, err := os.ReadFile(s.Path())
			require.NoError(t, err)
			assert.Equal(t, tt.doc, string(data))
		})
	}
}

func TestLoad_AcceptsMinimalValidDocument(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	doc := `{"providers": [{"id": "a", "type": "anthropic"}], "current_provider": "a"}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0o600))

	cfg, err := s.Load()
	require.NoError(t, err)
	require.Len(t, cfg.Providers, 1)
	assert.Equal(t, "a", cfg.CurrentProvider)
}

func TestLoad_UnreadableIsIOError(t *testing.T) {
	s := newStore(t)
	// a directory where the file should be cannot be read as a file
	require.NoError(t, os.MkdirAll(s.Path(), 0o755))

	_, err := s.Load()
	assert.True(t, errors.Is(err, domain.ErrIO))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.UpsertProvider(provider("a")))

	before, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(before))
	after, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestUpsertProvider_ReplacesInPlaceAndAppends(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.UpsertProvider(provider("a")))
	require.NoError(t, s.UpsertProvider(provider("b")))

	updated := provider("a")
	updated.Name = "Renamed"
	require.NoError(t, s.UpsertProvider(updated))

	cfg, err := s.Load()
	require.NoError(t, err)
	ids := []string{}
	for _, p := range cfg.Providers {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"openai-default", "a", "b"}, ids)
	assert.Equal(t, "Renamed", cfg.Providers[1].Name)
}

func TestUpsertProvider_IDsStayUnique(t *testing.T) {
	s := newStore(t)
	for i := 0; i < 20; i++ {
		require.NoError(t, s.UpsertProvider(provider(fmt.Sprintf("p%d", i%5))))
	}

	cfg, err := s.Load()
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, p := range cfg.Providers {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, cfg.Providers, 6)
	assertCurrentValid(t, cfg)
}

func TestUpsertProvider_FillsKindDefaults(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.UpsertProvider(domain.ProviderConfig{ID: "claude", Name: "Claude", Kind: "anthropic", Enabled: true}))

	p, err := s.Provider("claude")
	require.NoError(t, err)
	assert.Equal(t, "https://api.anthropic.com/v1", p.BaseURL)
	assert.Equal(t, "claude-3-5-sonnet-20241022", p.Model)
}

func TestUpsertProvider_Validation(t *testing.T) {
	negative := -1
	tests := []struct {
		name string
		p    domain.ProviderConfig
	}{
		{name: "missing id", p: domain.ProviderConfig{Kind: "openai"}},
		{name: "unknown kind", p: domain.ProviderConfig{ID: "x", Kind: "mystery"}},
		{name: "bad max tokens", p: domain.ProviderConfig{ID: "x", Kind: "openai", MaxTokens: &negative}},
		{name: "bad base url", p: domain.ProviderConfig{ID: "x", Kind: "openai", BaseURL: "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			before, err := s.Load()
			require.NoError(t, err)

			err = s.UpsertProvider(tt.p)
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)

			after, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestDeleteProvider_LastOneRejected(t *testing.T) {
	s := newStore(t)
	before, err := s.Load()
	require.NoError(t, err)
	dataBefore, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	err = s.DeleteProvider("openai-default")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "at least one provider required")

	after, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	dataAfter, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, dataBefore, dataAfter)
}

func TestDeleteProvider_ReassignsCurrent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.UpsertProvider(provider("a")))
	require.NoError(t, s.UpsertProvider(provider("b")))
	require.NoError(t, s.SetCurrentProvider("openai-default"))

	require.NoError(t, s.DeleteProvider("openai-default"))

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.CurrentProvider)
	assertCurrentValid(t, cfg)
}

func TestDeleteProvider_KeepsCurrentWhenOtherDeleted(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.UpsertProvider(provider("a")))
	require.NoError(t, s.SetCurrentProvider("a"))

	require.NoError(t, s.DeleteProvider("openai-default"))

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.CurrentProvider)
	assert.Len(t, cfg.Providers, 1)
}

func TestDeleteProvider_UnknownID(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.UpsertProvider(provider("a")))

	err := s.DeleteProvider("missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSetCurrentProvider(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.UpsertProvider(provider("a")))

	require.NoError(t, s.SetCurrentProvider("a"))
	current, err := s.CurrentProvider()
	require.NoError(t, err)
	assert.Equal(t, "a", current.ID)

	err = s.SetCurrentProvider("missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	current, err = s.CurrentProvider()
	require.NoError(t, err)
	assert.Equal(t, "a", current.ID)
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", FileName)
	s := New(path, nil)

	require.NoError(t, s.Save(domain.DefaultAIConfig()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
