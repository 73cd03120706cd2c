package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/store"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the catalog as a JSON array",
	Long: `Write the full catalog in the canonical JSON array shape.

With no argument the JSON goes to stdout. With a path it is written
there instead; exporting is also how a SQLite catalog is converted
back to a plain JSON file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

// ExportResponse reports a completed file export.
type ExportResponse struct {
	Status   string `json:"status"`
	Path     string `json:"path"`
	Exported int    `json:"exported"`
}

func runExport(cmd *cobra.Command, args []string) error {
	st := mustOpenLibrary()

	data, err := store.EncodeRecords(st.All())
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if len(args) == 0 {
		os.Stdout.Write(data)
		return nil
	}

	path := args[0]
	if err := os.WriteFile(path, data, 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", path, err)
	}

	if jsonOutput {
		outputJSON(ExportResponse{Status: "ok", Path: path, Exported: st.Len()})
	} else {
		fmt.Printf("Exported %d records to %s\n", st.Len(), path)
	}
	return nil
}
