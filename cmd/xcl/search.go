package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/query"
	"github.com/hfranco/xcl/internal/render"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <field> <query>",
	Short: "Search the catalog by a single field",
	Long: `Search the catalog by a single field. Matching is case-insensitive
and results are grouped by printer model.

Fields:
  model    printer model, substring match
  part     part number, substring match
  color    color, exact match
  type     consumable type, exact match
  iot      IOT codename, substring match
  region   region zone, exact match
  yield    page yield: N, LOW-HIGH, >N or <N

Examples:
  xcl search model "Phaser 5500"
  xcl search iot Hera2cXC
  xcl search yield 20000-40000
  xcl search yield ">50000"`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	s := mustOpenLibrary()

	res, err := query.Search(s.All(), args[0], args[1])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if jsonOutput {
		if res.Groups == nil {
			res.Groups = []query.Group{}
		}
		outputJSON(res)
	} else {
		fmt.Print(render.FormatResult(res))
	}

	return nil
}
