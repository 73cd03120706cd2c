package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/render"
	"github.com/hfranco/xcl/internal/stats"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the catalog",
	Long: `Summarize the catalog: record count, distinct printer models,
region zones and chip types, per-color and per-type breakdowns, and
the yield range over records with numeric yields.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st := mustOpenLibrary()
	summary := stats.Summarize(st.All())

	if jsonOutput {
		outputJSON(summary)
		return nil
	}

	fmt.Print(render.FormatStats(summary))
	return nil
}
