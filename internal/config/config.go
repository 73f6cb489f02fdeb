package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	Port                 string `json:"port"`
	UploadsDir           string `json:"uploads_dir"`
	CatalogPath          string `json:"catalog_path"`
	GmailCredentialsPath string `json:"gmail_credentials_path"`
	GmailTokenPath       string `json:"gmail_token_path"`
	ChromePath           string `json:"chrome_path"`
}

// DefaultConfig returns a new config with default values.
func DefaultConfig() *Config {
	return &Config{
		Port:       "8080",
		UploadsDir: "uploads",
	}
}

// GetConfigPath returns the path to the configuration file
// On Windows: %APPDATA%/SkillSage/config.json
// On Unix: ~/.config/SkillSage/config.json
func GetConfigPath() (string, error) {
	var configDir string

	if os.Getenv("APPDATA") != "" {
		// Windows
		configDir = filepath.Join(os.Getenv("APPDATA"), "SkillSage")
	} else {
		// Unix-like systems
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "SkillSage")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads configuration from the default config path with environment
// variable overrides applied.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom loads configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// applyEnv overlays environment variables onto file-based configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		c.UploadsDir = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("GMAIL_CREDENTIALS_PATH"); v != "" {
		c.GmailCredentialsPath = v
	}
	if v := os.Getenv("GMAIL_TOKEN_PATH"); v != "" {
		c.GmailTokenPath = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
}

// Save saves the configuration to the default config path.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	if c.UploadsDir == "" {
		return fmt.Errorf("uploads_dir is required")
	}

	if c.GmailCredentialsPath != "" {
		if _, err := os.Stat(c.GmailCredentialsPath); err != nil {
			return fmt.Errorf("gmail credentials file not found: %w", err)
		}
	}

	return nil
}
