package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/config"
	"github.com/hfranco/xcl/internal/importer"
)

var importFormat string

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "Field separator: tsv, csv or auto (default: config default_format, else auto)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-load records from a delimited file",
	Long: `Bulk-load records from a tab- or comma-separated file.

Each line carries the nine record fields in order:
  part_number, color, printer_model, consumable_type, yield,
  region_zone, metered_sold, iot_codename, chip_type

By default every line is sniffed individually: tab wins when the line
contains one, comma otherwise. Use --format tsv|csv to force a single
separator for the whole file. A malformed line is reported with its
line number and skipped; the rest of the file still imports.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResponse summarizes a bulk import for JSON output.
type ImportResponse struct {
	Status   string   `json:"status"`
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Total    int      `json:"total"`
	Errors   []string `json:"errors,omitempty"`
}

// resolveImportFormat picks the separator: the --format flag wins,
// then default_format from the global config, then auto sniffing.
func resolveImportFormat(flagValue string) (importer.Format, error) {
	name := flagValue
	if name == "" {
		name = config.GetDefaultFormat()
	}
	return importer.ParseFormat(name)
}

func runImport(cmd *cobra.Command, args []string) error {
	format, err := resolveImportFormat(importFormat)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading import file: %v", err)
	}

	st := mustOpenLibrary()

	records, lineErrs := importer.ParseDelimited(data, format)
	st.AppendAll(records)
	if err := st.Save(); err != nil {
		exitWithError(ExitError, "saving catalog: %v", err)
	}

	errStrs := make([]string, len(lineErrs))
	for i, e := range lineErrs {
		errStrs[i] = e.Error()
	}

	if jsonOutput {
		outputJSON(ImportResponse{
			Status:   "ok",
			Imported: len(records),
			Failed:   len(lineErrs),
			Total:    st.Len(),
			Errors:   errStrs,
		})
		return nil
	}

	fmt.Printf("Imported %d records from %s (%d records in catalog)\n", len(records), args[0], st.Len())
	if len(lineErrs) > 0 {
		fmt.Println("\nSkipped lines:")
		for _, e := range lineErrs {
			fmt.Printf("  - %s\n", e)
		}
	}
	return nil
}
