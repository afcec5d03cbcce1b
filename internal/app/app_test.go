package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nulzo/aimind/internal/config"
	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBootstrap_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".aimind")
	cfg := &config.Config{
		Data:  config.DataConfig{Dir: dir},
		Files: config.FilesConfig{MaxRecent: 5},
	}

	a, err := Bootstrap(cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.FileExists(t, filepath.Join(dir, "config.json"))
	assert.FileExists(t, filepath.Join(dir, "aimind.db"))

	got, err := a.Service.GetConfigs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProviderID, got.CurrentProvider)

	mindmap := filepath.Join(t.TempDir(), "ideas.json")
	_, err = a.Service.SaveMindmap(context.Background(), json.RawMessage(`{"root":{}}`), mindmap)
	require.NoError(t, err)

	files, err := a.Service.RecentFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "ideas", files[0].Title)
}

func TestBootstrap_CorruptConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o600))

	_, err := Bootstrap(&config.Config{Data: config.DataConfig{Dir: dir}}, zap.NewNop())
	assert.ErrorIs(t, err, domain.ErrParse)
}
