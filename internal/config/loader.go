package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
)

const configFileName = "config.toml"

// configFilePath finds the config file, checking YAP_CONFIG_DIR first
// (useful during development or other non-standard setups), then the
// platform config directories.
func configFilePath() string {
	var configDirs []string

	if dir := os.Getenv("YAP_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, configFileName)
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to
	// handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDirs = append(configDirs, xdg)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		p := filepath.Join(dir, "yap", configFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LogDir is where the log file lives: $XDG_STATE_HOME/yap, falling
// back to ~/.local/state/yap.
func LogDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "yap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".local", "state", "yap")
}

// LoadUserConfig returns the defaults overlaid with the user's config
// file, if one exists. A missing file is not an error; a malformed one
// is.
func LoadUserConfig() (*Config, error) {
	cfg := Default()
	p := configFilePath()
	if p == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	if err := cfg.Load(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}
