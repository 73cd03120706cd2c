package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/store"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create an empty catalog",
	Long: `Create an empty catalog file.

The path defaults to the resolved library location. The backend is
chosen by extension: .db, .sqlite and .sqlite3 create a SQLite
catalog, anything else a JSON array file. Init refuses to overwrite
an existing file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		path = mustResolveLibrary()
	}

	if err := store.Create(path); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		outputJSON(StatusResponse{Status: "initialized", Path: path})
	} else {
		fmt.Printf("Initialized empty catalog at %s\n", path)
	}
	return nil
}
