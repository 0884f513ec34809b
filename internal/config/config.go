package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/campuskg/hallgraph/internal/housing"
)

// Config holds all configuration for hallgraph.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Claude  ClaudeConfig  `mapstructure:"claude"`
	Neo4j   Neo4jConfig   `mapstructure:"neo4j"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig pins the entity catalog version for this deployment.
// Mixing type names across versions is undefined behavior, so exactly one
// version is in force for the process lifetime.
type CatalogConfig struct {
	Version string `mapstructure:"version"`
}

// ClaudeConfig holds Anthropic Claude API settings for the extraction engine.
type ClaudeConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// String returns a safe representation of ClaudeConfig with the API key masked.
func (c ClaudeConfig) String() string {
	return fmt.Sprintf("ClaudeConfig{APIKey:%s, Model:%s}", maskAPIKey(c.APIKey), c.Model)
}

// maskAPIKey shows first 4 + last 4 chars, replacing the middle with asterisks.
func maskAPIKey(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return "***"
	}
	return key[:visible] + "****" + key[len(key)-visible:]
}

// Neo4jConfig holds graph database connection settings.
type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("catalog.version", string(housing.DefaultVersion))

	v.SetDefault("claude.model", "claude-haiku-4-5-20251001")

	v.SetDefault("neo4j.uri", "bolt://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.database", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".hallgraph"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("HALLGRAPH")
	v.AutomaticEnv()

	// Map specific env vars
	_ = v.BindEnv("claude.api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("catalog.version", "HALLGRAPH_CATALOG_VERSION")
	_ = v.BindEnv("neo4j.uri", "HALLGRAPH_NEO4J_URI")
	_ = v.BindEnv("neo4j.username", "HALLGRAPH_NEO4J_USERNAME")
	_ = v.BindEnv("neo4j.password", "HALLGRAPH_NEO4J_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK - use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	if c.Catalog.Version == "" {
		return fmt.Errorf("catalog.version must not be empty")
	}
	if !housing.Version(c.Catalog.Version).IsValid() {
		return fmt.Errorf("catalog.version %q is not a registered catalog version", c.Catalog.Version)
	}
	if c.Neo4j.URI == "" {
		return fmt.Errorf("neo4j.uri must not be empty")
	}
	if c.Logging.Level != "" {
		switch c.Logging.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
		}
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
