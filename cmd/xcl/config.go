package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show where the catalog will be read from and why.

The library path is resolved from --library, then $XCL_LIBRARY, then
library_path in the global config file, then ./xerox_data.json in the
working directory.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigResponse describes the resolved configuration for JSON output.
type ConfigResponse struct {
	Library       string `json:"library"`
	Source        string `json:"source"`
	GlobalConfig  string `json:"global_config"`
	DefaultFormat string `json:"default_format,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	path, source, err := config.ResolveLibrary(libraryFlag)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	resp := ConfigResponse{
		Library:       path,
		Source:        source,
		GlobalConfig:  config.GlobalConfigPath(),
		DefaultFormat: config.GetDefaultFormat(),
	}

	if jsonOutput {
		outputJSON(resp)
		return nil
	}

	fmt.Printf("Library         %s\n", resp.Library)
	fmt.Printf("Source          %s\n", resp.Source)
	fmt.Printf("Global config   %s\n", resp.GlobalConfig)
	if resp.DefaultFormat != "" {
		fmt.Printf("Default format  %s\n", resp.DefaultFormat)
	}

	if source == config.SourceDefault {
		fmt.Println()
		fmt.Println(config.HelpfulConfigMessage())
	}
	return nil
}
