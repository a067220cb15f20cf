package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultMastraURL = "http://localhost:4862"

// Config holds the client settings persisted in the config file.
type Config struct {
	MastraURL      string            `yaml:"mastra_url"`
	DefaultAgent   string            `yaml:"default_agent,omitempty"`
	DefaultSession string            `yaml:"default_session,omitempty"`
	LogLevel       string            `yaml:"log_level,omitempty"`
	Theme          map[string]string `yaml:"theme,omitempty"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		MastraURL: DefaultMastraURL,
		LogLevel:  "info",
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("VARGOS_CLI_MASTRA_URL"); val != "" {
		c.MastraURL = val
	}
	if val := os.Getenv("VARGOS_CLI_AGENT"); val != "" {
		c.DefaultAgent = val
	}
	if val := os.Getenv("VARGOS_CLI_SESSION"); val != "" {
		c.DefaultSession = val
	}
	if val := os.Getenv("VARGOS_CLI_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
}

func (c *Config) Validate() error {
	base := strings.TrimSpace(c.MastraURL)
	if base == "" {
		return fmt.Errorf("mastra_url must not be empty")
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid mastra_url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("mastra_url %q must use http or https", base)
	}
	return nil
}
