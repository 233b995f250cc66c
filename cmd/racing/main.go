// racing is the terminal front end and data tool for the racing prototype.
//
// Usage:
//
//	racing play                     - Start the game
//	racing slots                    - Show the save slots
//	racing new <slot>               - Start a new save from the template
//	racing show <slot>              - Print a save's player record
//	racing delete <slot>            - Delete a save
//	racing settings                 - Print the global settings
//	racing settings set <key> <val> - Change one setting
//	racing init                     - Write the bundled data files
//
// Global flags:
//
//	--data <dir>        - Data directory (default: $RACING_DATA_DIR or ./data)
//	--log-level <level> - debug, info, warn or error (default: $RACING_LOG_LEVEL or info)
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ca-racing/internal/config"
	"github.com/vovakirdan/ca-racing/internal/locale"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

var (
	// Global flags
	flagDataDir  string
	flagLogLevel string

	// envLang is RACING_LANG; empty means detect from the locale.
	envLang string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racing",
	Short: "CA Racing - a racing game prototype in your terminal",
	Long: `CA Racing keeps three save slots and a set of global settings in a
human-readable data directory.

Available commands:
  play      - Start the game
  slots     - Show which save slots are in use
  new       - Create a save in an empty slot
  show      - Print a save's player record
  delete    - Delete a save
  settings  - Print or change the global settings
  init      - Write the bundled data files into the data directory

Examples:
  racing play
  racing slots --data ~/.racing
  racing settings set max_fps 144`,
}

func init() {
	env, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		env = config.Env{DataDir: "data", LogLevel: "info"}
	}
	envLang = env.Lang

	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", env.DataDir, "Path to the data directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(initCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "racing",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openData opens the data directory and its settings store. With seed set,
// bundled files missing from the directory are written first.
func openData(logger *log.Logger, seed bool) (*storage.Store, *config.Store) {
	store, err := storage.Open(flagDataDir, logger)
	if err != nil {
		fatal("could not open data directory: %v", err)
	}
	if seed {
		n, err := store.Seed()
		if err != nil {
			fatal("could not write bundled data: %v", err)
		}
		if n > 0 {
			logger.Debug("wrote bundled data files", "count", n)
		}
	}

	settings := config.NewStore(store.SettingsPath(), logger)
	settings.SetDefaultLanguage(defaultLanguage())
	return store, settings
}

// defaultLanguage is the first-run language: RACING_LANG if set, else the
// system locale.
func defaultLanguage() string {
	if envLang != "" {
		return locale.Match(envLang)
	}
	return locale.Detect()
}

// parseSlot validates a slot argument.
func parseSlot(arg string) int {
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 1 || slot > storage.SlotCount {
		fatal("invalid slot %q (expected 1-%d)", arg, storage.SlotCount)
	}
	return slot
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
