package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesDefaultsToUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: /tmp/planilhas\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/planilhas", cfg.OutputDir)
	assert.Equal(t, "./archive", cfg.ArchiveDir)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, int64(8), cfg.Server.MaxUploadMB)
	assert.Equal(t, 15, cfg.Server.SessionTTLMinutes)
	assert.False(t, cfg.ArchiveProcessed)
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: ./out
archive_dir: ./done
archive_processed: true
server:
  listen_addr: ":9090"
  max_upload_mb: 2
  session_ttl_minutes: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./out", cfg.OutputDir)
	assert.Equal(t, "./done", cfg.ArchiveDir)
	assert.True(t, cfg.ArchiveProcessed)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, int64(2), cfg.Server.MaxUploadMB)
	assert.Equal(t, 5, cfg.Server.SessionTTLMinutes)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNegativeLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  max_upload_mb: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_upload_mb")
}
