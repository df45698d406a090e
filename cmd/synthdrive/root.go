package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/synthdrive/config"
)

// version is overridable at build time via -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "synthdrive",
	Short: "Terminal synthwave lane runner that reveals portfolio facts",
	Long: "Synthdrive drives a hovercar down a neon road where every " +
		"collectible carries one fact about its owner: fetched from a " +
		"code-hosting profile, authored in a local facts file, or pulled " +
		"from the embedded resume fallback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(config.Load())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.String("user", "", "code-hosting login to fetch facts from")
	flags.String("facts", "", "authored facts file (JSON, hot-reloaded)")
	flags.Int("fps", 60, "simulation and render rate")
	flags.Int64("seed", 0, "RNG seed for reproducible runs (0 = time-seeded)")
	flags.Bool("mute", false, "disable all audio")
	flags.Float64("volume", 0.7, "pickup chime volume (0.0-1.0)")
	flags.Bool("debug", false, "show the runtime stats line")
	flags.String("journal", "", "JSONL event journal path (empty disables)")

	_ = viper.BindPFlag("user", flags.Lookup("user"))
	_ = viper.BindPFlag("facts_file", flags.Lookup("facts"))
	_ = viper.BindPFlag("fps", flags.Lookup("fps"))
	_ = viper.BindPFlag("seed", flags.Lookup("seed"))
	_ = viper.BindPFlag("mute", flags.Lookup("mute"))
	_ = viper.BindPFlag("volume", flags.Lookup("volume"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("journal", flags.Lookup("journal"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	viper.SetConfigName("synthdrive")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "synthdrive"))
	}

	viper.SetEnvPrefix("SYNTHDRIVE")
	viper.AutomaticEnv()

	// No config file is fine; defaults, env and flags cover everything
	_ = viper.ReadInConfig()
}
