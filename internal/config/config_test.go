package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Catalog: CatalogConfig{Version: "v3"},
		Neo4j:   Neo4jConfig{URI: "bolt://localhost:7687"},
		Logging: LoggingConfig{Level: "info"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "v3", cfg.Catalog.Version)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Username)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Claude.Model)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HALLGRAPH_CATALOG_VERSION", "v1")
	t.Setenv("HALLGRAPH_NEO4J_URI", "bolt://graph.example.edu:7687")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test-key-1234")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "v1", cfg.Catalog.Version)
	assert.Equal(t, "bolt://graph.example.edu:7687", cfg.Neo4j.URI)
	assert.Equal(t, "sk-ant-test-key-1234", cfg.Claude.APIKey)
}

func TestLoad_RejectsUnknownCatalogVersion(t *testing.T) {
	t.Setenv("HALLGRAPH_CATALOG_VERSION", "v99")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a registered catalog version")
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Catalog.Version = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Catalog.Version = "v4"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Neo4j.URI = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Level = ""
	assert.NoError(t, cfg.Validate())
}

func TestClaudeConfig_StringMasksAPIKey(t *testing.T) {
	c := ClaudeConfig{APIKey: "sk-ant-api03-verysecret", Model: "claude-haiku-4-5-20251001"}
	s := c.String()
	assert.NotContains(t, s, "verysecret")
	assert.Contains(t, s, "sk-a")

	short := ClaudeConfig{APIKey: "tiny"}
	assert.Contains(t, short.String(), "***")
	assert.NotContains(t, short.String(), "tiny")
}
