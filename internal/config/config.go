// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags and environment variables.
type Config struct {
	// Paths
	Document string `json:"document,omitempty"` // Path to the CV document JSON file
	DataDir  string `json:"data_dir,omitempty"` // Settings database directory

	// Completion service
	APIKey    string `json:"api_key,omitempty"`    // Bearer token for the completion service
	BaseURL   string `json:"base_url,omitempty"`   // Service base URL
	Model     string `json:"model,omitempty"`      // Model name sent with each request
	MaxTokens int    `json:"max_tokens,omitempty"` // Completion token budget
	// Pointer so an explicit 0.0 is distinguishable from unset.
	Temperature *float64 `json:"temperature,omitempty"` // Sampling temperature (0.0-2.0)

	// Behavior
	Language string `json:"language,omitempty"` // Response language for AI output; empty means detect
	Port     int    `json:"port,omitempty"`     // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. main
// loads .env first, so both real env and dotenv values land here.
func FromEnv() Config {
	return Config{
		Document: os.Getenv("CV_DOCUMENT"),
		DataDir:  os.Getenv("CV_DATA_DIR"),
		APIKey:   os.Getenv("CV_API_KEY"),
		BaseURL:  os.Getenv("CV_BASE_URL"),
		Model:    os.Getenv("CV_MODEL"),
		Language: os.Getenv("CV_LANGUAGE"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("config error: 'temperature' must be between 0.0 and 2.0")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under CLI flags and env.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.MaxTokens == 0 {
		result.MaxTokens = defaults.MaxTokens
	}
	if result.Temperature == nil {
		result.Temperature = defaults.Temperature
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}
