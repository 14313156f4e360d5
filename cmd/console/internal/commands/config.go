package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional console configuration file at
// ~/.poscon/config.yaml. Flags and environment variables override it.
type FileConfig struct {
	Server   string        `yaml:"server"`
	StateDir string        `yaml:"stateDir"`
	Timeout  time.Duration `yaml:"-"`

	// RawTimeout is the file's timeout field, e.g. "10s".
	RawTimeout string `yaml:"timeout"`
}

// DefaultServer is where the platform API listens in a local setup.
const DefaultServer = "http://localhost:7087"

// LoadFileConfig reads the config file, filling defaults for anything
// unset. A missing file is not an error.
func LoadFileConfig() (FileConfig, error) {
	cfg := FileConfig{
		Server:  DefaultServer,
		Timeout: 30 * time.Second,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(home, ".poscon", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.RawTimeout != "" {
		timeout, err := time.ParseDuration(cfg.RawTimeout)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse timeout %q: %w", cfg.RawTimeout, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}
