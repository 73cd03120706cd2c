package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfranco/xcl/internal/catalog"
)

var (
	addPart    string
	addColor   string
	addModel   string
	addType    string
	addYield   string
	addRegion  string
	addMetered string
	addIOT     string
	addChip    string
)

func init() {
	addCmd.Flags().StringVar(&addPart, "part", "", "Part number")
	addCmd.Flags().StringVar(&addColor, "color", "", "Color")
	addCmd.Flags().StringVar(&addModel, "model", "", "Printer model")
	addCmd.Flags().StringVar(&addType, "type", "", "Consumable type (toner, drum, ...)")
	addCmd.Flags().StringVar(&addYield, "yield", "", "Page yield")
	addCmd.Flags().StringVar(&addRegion, "region", "", "Region zone")
	addCmd.Flags().StringVar(&addMetered, "metered", "", "Metered/sold marker")
	addCmd.Flags().StringVar(&addIOT, "iot", "", "IOT codename")
	addCmd.Flags().StringVar(&addChip, "chip", "", "Chip type")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append one record to the catalog",
	Long: `Append one record to the catalog and save it. No field is required
and no uniqueness check is applied; appending the same part number
twice keeps both records.

Examples:
  xcl add --part 006R01521 --color Black --model "DCP 550/560/570" \
      --type toner --yield 30000 --region WW --iot Hera2cXC`,
	RunE: runAdd,
}

// AddResponse is the JSON response for add.
type AddResponse struct {
	Status     string `json:"status"`
	PartNumber string `json:"part_number"`
	Total      int    `json:"total"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	s := mustOpenLibrary()

	rec := catalog.Record{
		PartNumber:     addPart,
		Color:          addColor,
		PrinterModel:   addModel,
		ConsumableType: addType,
		Yield:          addYield,
		RegionZone:     addRegion,
		MeteredSold:    addMetered,
		IOTCodename:    addIOT,
		ChipType:       addChip,
	}

	s.Append(rec)
	if err := s.Save(); err != nil {
		exitWithError(ExitError, "saving catalog: %v", err)
	}

	if jsonOutput {
		outputJSON(AddResponse{Status: "added", PartNumber: rec.PartNumber, Total: s.Len()})
	} else {
		fmt.Printf("Added %s (%d records in catalog)\n", displayPart(rec.PartNumber), s.Len())
	}

	return nil
}

func displayPart(part string) string {
	if part == "" {
		return "(no part number)"
	}
	return part
}
