// Package config owns runtime tuning (viper: defaults, optional
// synthdrive.toml, SYNTHDRIVE_* env, CLI flags) and the two-key save
// state persisted between sessions.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a synthdrive session.
// Values are populated from synthdrive.toml, SYNTHDRIVE_* env vars, and
// CLI flags. Systems receive plain values, never viper.
type Config struct {
	User      string  `mapstructure:"user"`       // code-hosting login to fetch facts from
	FactsFile string  `mapstructure:"facts_file"` // authored facts.json, hot-reloaded
	FPS       int     `mapstructure:"fps"`
	Seed      int64   `mapstructure:"seed"` // 0 = time-seeded
	Mute      bool    `mapstructure:"mute"`
	Volume    float64 `mapstructure:"volume"`
	Debug     bool    `mapstructure:"debug"`
	Journal   string  `mapstructure:"journal"` // JSONL path, empty disables
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("user", "")
	viper.SetDefault("facts_file", "")
	viper.SetDefault("fps", 60)
	viper.SetDefault("seed", 0)
	viper.SetDefault("mute", false)
	viper.SetDefault("volume", 0.7)
	viper.SetDefault("debug", false)
	viper.SetDefault("journal", "")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	return cfg
}
