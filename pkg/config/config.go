package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Posts
	PostExtension string   `yaml:"post_extension"`
	PostOutputDir string   `yaml:"post_output_dir"`
	BlogURLPrefix string   `yaml:"blog_url_prefix"`
	DefaultAuthor string   `yaml:"default_author"`
	Categories    []string `yaml:"categories"`

	// Usecases
	UsecaseOutputDir string `yaml:"usecase_output_dir"`
	UsecaseURLPrefix string `yaml:"usecase_url_prefix"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		PostExtension:    "mdx",
		PostOutputDir:    "",
		BlogURLPrefix:    "/blog",
		DefaultAuthor:    "",
		Categories:       []string{"Tutorial", "Case Study", "Product", "Engineering"},
		UsecaseOutputDir: "",
		UsecaseURLPrefix: "/usecases",
		ColorTheme:       "auto",
	}
}

// DefaultPath returns the config file location: <user config dir>/sitegen/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "sitegen", "config.yaml"), nil
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	cfg.PostExtension = strings.TrimPrefix(cfg.PostExtension, ".")
	if cfg.PostExtension == "" {
		cfg.PostExtension = "mdx"
	}
	if cfg.BlogURLPrefix == "" {
		cfg.BlogURLPrefix = "/blog"
	}
	if cfg.UsecaseURLPrefix == "" {
		cfg.UsecaseURLPrefix = "/usecases"
	}
	cfg.BlogURLPrefix = strings.TrimSuffix(cfg.BlogURLPrefix, "/")
	cfg.UsecaseURLPrefix = strings.TrimSuffix(cfg.UsecaseURLPrefix, "/")

	if !isValidTheme(cfg.ColorTheme) {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func isValidTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
