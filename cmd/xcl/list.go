package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/catalog"
	"github.com/hfranco/xcl/internal/render"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the whole catalog grouped by printer model",
	Long: `List every printer model in the catalog with its record counts,
alphabetically. With --json, outputs the full record array instead.

Examples:
  xcl list
  xcl list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s := mustOpenLibrary()
	records := s.All()

	if jsonOutput {
		if records == nil {
			records = []catalog.Record{}
		}
		outputJSON(records)
	} else {
		fmt.Print(render.FormatOverview(records))
	}

	return nil
}
