package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the application configuration. The runtime treats it as an
// opaque value; only components and the entry point interpret it.
type Config struct {
	Log   Log   `toml:"log"`
	Proxy Proxy `toml:"proxy"`
	Keys  Keys  `toml:"keys"`
}

// Log controls the file logger.
type Log struct {
	// Level is a logrus level name; YAP_LOG_LEVEL overrides it.
	Level string `toml:"level"`
}

// Proxy configures the demo HTTP proxy feed.
type Proxy struct {
	Enabled bool   `toml:"enabled"`
	Listen  string `toml:"listen"`
}

// Keys maps application actions to keys in keybinding notation
// ("q", "ctrl+z", "up"). Key events stringify to the same notation,
// so matching is a plain comparison.
type Keys struct {
	Quit        string `toml:"quit"`
	Suspend     string `toml:"suspend"`
	Increment   string `toml:"increment"`
	Decrement   string `toml:"decrement"`
	FocusNext   string `toml:"focus_next"`
	GrowPanel   string `toml:"grow_panel"`
	ShrinkPanel string `toml:"shrink_panel"`
	OpenBrowser string `toml:"open_browser"`
}

// Default returns the baseline configuration every load starts from.
func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Proxy: Proxy{
			Enabled: true,
			Listen:  "127.0.0.1:8080",
		},
		Keys: Keys{
			Quit:        "q",
			Suspend:     "ctrl+z",
			Increment:   "i",
			Decrement:   "d",
			FocusNext:   "tab",
			GrowPanel:   "+",
			ShrinkPanel: "-",
			OpenBrowser: "o",
		},
	}
}

// Load merges TOML data over the receiver. Unknown keys are rejected
// so typos surface at startup instead of silently doing nothing.
func (c *Config) Load(data string) error {
	meta, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}
