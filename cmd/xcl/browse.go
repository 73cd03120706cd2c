package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Browse the catalog in a full-screen terminal UI.

The menu offers the seven search fields plus the catalog overview,
statistics and an add-record form. Searches run against the same
in-memory catalog as the other commands; added records are saved
immediately.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	st := mustOpenLibrary()

	p := tea.NewProgram(tui.New(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return nil
}
