package cli

import (
	"github.com/spf13/cobra"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the destination field types",
	Long:  `Lists the twelve destination field types a mapping entry can convert to, with the conversion rules each one applies.`,
	Run:   runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, _ []string) {
	types := domain.PickerFieldTypes()

	width := 0
	for _, t := range types {
		if len(t) > width {
			width = len(t)
		}
	}

	cmd.Println("Destination field types:")
	cmd.Println()
	for _, t := range types {
		cmd.Printf("  %-*s  %s\n", width, string(t), t.Description())
	}
}
