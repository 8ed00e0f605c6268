package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{"port": 9090, "database_url": "postgres://localhost/match", "catalog_limit": 50}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/match", cfg.DatabaseURL)
	assert.Equal(t, 50, cfg.CatalogLimit)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"port": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestValidate_CatalogLimitTooLarge(t *testing.T) {
	cfg := Config{CatalogLimit: 10000}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeTopN(t *testing.T) {
	cfg := Config{TopN: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ZeroValueConfigIsValid(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_AppliesFileDefaults(t *testing.T) {
	cfg := Config{Port: 3000}
	merged := cfg.MergeWithDefaults(Config{Port: 9999, DatabaseURL: "postgres://fallback"})

	assert.Equal(t, 3000, merged.Port)
	assert.Equal(t, "postgres://fallback", merged.DatabaseURL)
}

func TestMergeWithDefaults_AppliesHardDefaults(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultCatalogLimit, merged.CatalogLimit)
	assert.Equal(t, DefaultTopN, merged.TopN)
}
