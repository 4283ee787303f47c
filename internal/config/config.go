// ABOUTME: Fevertrack configuration management.
// ABOUTME: Handles the data directory, listen address, and chart threshold.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fevertrack/internal/models"
	"github.com/harperreed/fevertrack/internal/storage"
)

// DefaultListenAddr is where the local dashboard binds. Loopback only;
// this is not a network service.
const DefaultListenAddr = "127.0.0.1:8754"

// Config stores fevertrack configuration.
type Config struct {
	// DataDir is the root directory for data storage; fevertrack.db lives
	// here. Supports ~ expansion. Defaults to ~/.local/share/fevertrack.
	DataDir string `json:"data_dir,omitempty"`

	// ListenAddr is the dashboard bind address.
	ListenAddr string `json:"listen_addr,omitempty"`

	// CriticalTemp overrides the temperature highlighted as critical on
	// the chart, in Celsius.
	CriticalTemp float64 `json:"critical_temp,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetListenAddr returns the configured bind address or the default.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return c.ListenAddr
}

// GetCriticalTemp returns the configured critical threshold or the default.
func (c *Config) GetCriticalTemp() float64 {
	if c.CriticalTemp == 0 {
		return models.DefaultCriticalTempC
	}
	return c.CriticalTemp
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the database in the configured data directory.
func (c *Config) OpenStore() (*storage.Store, error) {
	return storage.Open(filepath.Join(c.GetDataDir(), "fevertrack.db"))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fevertrack", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
