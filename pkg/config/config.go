// Package config provides configuration management for the qrmeta CLI tool
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Davincible/qrmeta/internal/matrixio"
)

// Config represents the main configuration structure
type Config struct {
	Defaults DefaultSettings `yaml:"defaults"`
	UI       UIConfig        `yaml:"ui"`
	Input    InputConfig     `yaml:"input"`
}

// DefaultSettings contains default values for commands
type DefaultSettings struct {
	Level   string `yaml:"level" validate:"oneof=L M Q H l m q h"` // Default: L
	Workers int    `yaml:"workers" validate:"gte=0,lte=64"`         // 0 uses GOMAXPROCS
}

// UIConfig contains output settings
type UIConfig struct {
	UseColor bool `yaml:"use_color"`
	JSON     bool `yaml:"json"`
}

// InputConfig lists the characters accepted for dark and light modules in
// matrix files
type InputConfig struct {
	Dark  string `yaml:"dark" validate:"required"`
	Light string `yaml:"light" validate:"required"`
}

var validate = validator.New()

// Manager manages configuration loading and saving
type Manager struct {
	config     *Config
	configPath string
}

// NewManager resolves the configuration path and loads it. A missing file
// yields the default configuration; it is not written back.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return nil, err
		}
	}

	m := &Manager{configPath: path}
	if err := m.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		m.config = DefaultConfig()
	}

	return m, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultSettings{
			Level:   "L",
			Workers: 0,
		},
		UI: UIConfig{
			UseColor: true,
			JSON:     false,
		},
		Input: InputConfig{
			Dark:  matrixio.DefaultDark,
			Light: matrixio.DefaultLight,
		},
	}
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads the configuration from disk. Keys absent from the file keep
// their default values.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", m.configPath, err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	if err := m.config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Config returns the current configuration
func (m *Manager) Config() *Config {
	return m.config
}

// Path returns the configuration file path
func (m *Manager) Path() string {
	return m.configPath
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	if customPath := os.Getenv("QRMETA_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "qrmeta", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "qrmeta", "config.yaml"), nil
}
