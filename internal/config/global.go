package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/xcl/config.yml.
type GlobalConfig struct {
	LibraryPath   string `yaml:"library_path,omitempty"`
	DefaultFormat string `yaml:"default_format,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "xcl"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/xcl/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.LibraryPath != "" {
		cfg.LibraryPath = ExpandTilde(cfg.LibraryPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetDefaultFormat returns the configured bulk-import format, empty
// when unset.
func GetDefaultFormat() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.DefaultFormat
}

// HelpfulConfigMessage returns a tip for setting a permanent catalog
// location, shown by `xcl config` when nothing is configured.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`Tip: create %s to set a permanent catalog location:
  mkdir -p %s
  echo 'library_path: ~/parts/%s' > %s`,
		configPath,
		filepath.Dir(configPath),
		DefaultLibraryFile,
		configPath)
}
