// Package main provides the xcl CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/config"
	"github.com/hfranco/xcl/internal/store"
)

// Version is set at build time via ldflags
var Version = "dev"

// jsonOutput switches command output from human-readable text to JSON
var jsonOutput bool

// libraryFlag overrides the catalog location for a single invocation
var libraryFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xcl",
	Short: "Look up printer consumables from a local catalog",
	Long: `xcl is a lookup tool for printer consumable part numbers.

It keeps a catalog of toner, drum and other supply records in a single
JSON file (or SQLite database), loads it fully into memory, and answers
field-scoped searches with results grouped by printer model.

The catalog location is resolved from --library, then $XCL_LIBRARY,
then library_path in ~/.config/xcl/config.yml, then ./xerox_data.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for XCL_LIBRARY)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&libraryFlag, "library", "", "Catalog file to use")
	rootCmd.Version = Version
}

// mustResolveLibrary returns the catalog path, or exits with a config
// error when the global config is unreadable.
func mustResolveLibrary() string {
	path, _, err := config.ResolveLibrary(libraryFlag)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return path
}

// mustOpenLibrary loads the catalog, or exits. A malformed catalog is
// a data error and never degrades to an empty one.
func mustOpenLibrary() *store.Store {
	path := mustResolveLibrary()
	s, err := store.Open(path)
	if err != nil {
		if store.IsFormatError(err) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "opening catalog: %v", err)
	}
	return s
}
