package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds connection parameters shared by the ulp-wake binaries.
type Config struct {
	// ServerAddress is the gRPC server address for wake service connections.
	ServerAddress string `yaml:"server_addr"`
	// MetricsAddress is an optional listen address for the Prometheus endpoint.
	MetricsAddress string `yaml:"metrics_addr"`
	// StateFile is the path to the JSON file storing the recorded wake state.
	StateFile string `yaml:"state_file"`
	// JournalFile is the path to the SQLite journal of wake events.
	JournalFile string `yaml:"journal_file"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultConfigFilename is the default filename for connection settings.
	DefaultConfigFilename = "ulp-wake-settings.yaml"

	// DefaultStateFilename is the default filename for wake state JSON.
	DefaultStateFilename = "ulp-wake-state.json"

	// DefaultJournalFilename is the default filename for the wake-event journal.
	DefaultJournalFilename = "ulp-wake-journal.db"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting.
func Validate(cfg *Config) error {
	if cfg.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	// Set default timeout if not specified
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	// Set default state file if not specified
	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFilename
	}

	// Set default journal file if not specified
	if cfg.JournalFile == "" {
		cfg.JournalFile = DefaultJournalFilename
	}

	if cfg.MetricsAddress == "" {
		return nil
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.MetricsAddress); err != nil {
		return fmt.Errorf("invalid metrics socket: %w", err)
	}

	return nil
}
