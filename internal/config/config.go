// Package config handles configuration loading and validation for neurodemon
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "neurodemon.yaml"

// DefaultReplyDelay is how long the assistant pretends to type before
// answering when no delay is configured.
const DefaultReplyDelay = time.Second

// Config represents the main configuration for neurodemon
type Config struct {
	// Where durable state (the local store and activity log) lives.
	// Empty means the per-user default directory.
	DataDir string `yaml:"data_dir"`

	// Legal gate configuration
	Legal LegalConfig `yaml:"legal"`

	// Assistant configuration
	Chat ChatConfig `yaml:"chat"`

	// Activity log configuration
	Audit AuditConfig `yaml:"audit"`
}

// LegalConfig holds consent gate settings
type LegalConfig struct {
	// Version of the disclaimer users must have accepted. Bumping it
	// sends everyone through the gate again.
	Version string `yaml:"version"`
}

// ChatConfig holds assistant settings
type ChatConfig struct {
	ReplyDelay string `yaml:"reply_delay"` // e.g., "1s", "750ms"
}

// AuditConfig holds activity log settings
type AuditConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Legal: LegalConfig{
			Version: "1.0",
		},
		Chat: ChatConfig{
			ReplyDelay: "1s",
		},
		Audit: AuditConfig{
			Enabled: true,
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Legal.Version == "" {
		return fmt.Errorf("legal.version is required")
	}
	if c.Chat.ReplyDelay != "" {
		d, err := time.ParseDuration(c.Chat.ReplyDelay)
		if err != nil {
			return fmt.Errorf("chat.reply_delay: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("chat.reply_delay must not be negative")
		}
	}
	return nil
}

// ReplyDelay returns the parsed assistant reply delay, or the default when
// unset.
func (c *Config) ReplyDelay() time.Duration {
	if c.Chat.ReplyDelay == "" {
		return DefaultReplyDelay
	}
	d, err := time.ParseDuration(c.Chat.ReplyDelay)
	if err != nil || d < 0 {
		return DefaultReplyDelay
	}
	return d
}

// DefaultDir returns the per-user directory for config and data files.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, "neurodemon"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// ResolveDataDir returns the configured data directory, falling back to the
// per-user default.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return DefaultDir()
}
