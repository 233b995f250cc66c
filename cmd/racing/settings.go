package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ca-racing/internal/config"
	"github.com/vovakirdan/ca-racing/internal/core"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the global settings",
	Long: `Prints settings.json from the data directory as YAML, creating it
with the defaults if it does not exist yet.

Examples:
  racing settings
  racing settings set fullscreen true
  racing settings defaults`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Changes one setting and saves settings.json.

Keys:
  ` + strings.Join(config.Keys(), "\n  "),
	Args: cobra.ExactArgs(2),
	Run:  runSettingsSet,
}

var settingsDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default settings",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.GetDefaultYAML()))
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsDefaultsCmd)
}

// loadSettings loads the settings, refusing to continue on a malformed file
// so it is not overwritten.
func loadSettings(store *config.Store) config.Settings {
	cfg, err := store.Load()
	if errors.Is(err, core.ErrParse) {
		fatal("%v (fix or remove %s)", err, store.Path())
	}
	if err != nil {
		fatal("could not load settings: %v", err)
	}
	return cfg
}

func runSettings(_ *cobra.Command, _ []string) {
	_, store := openData(newLogger(os.Stderr), false)
	cfg := loadSettings(store)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatal("could not format settings: %v", err)
	}
	fmt.Printf("# %s\n", store.Path())
	fmt.Print(string(out))
}

func runSettingsSet(_ *cobra.Command, args []string) {
	_, store := openData(newLogger(os.Stderr), false)
	cfg := loadSettings(store)

	if err := cfg.Set(args[0], args[1]); err != nil {
		fatal("%v", err)
	}
	if err := store.Save(cfg); err != nil {
		fatal("could not save settings: %v", err)
	}
	fmt.Printf("%s updated.\n", args[0])
}
