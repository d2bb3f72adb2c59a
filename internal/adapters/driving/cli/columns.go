package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns [table]",
	Short: "Show the columns of a table and their inferred field types",
	Args:  cobra.ExactArgs(1),
	RunE:  runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	if schemaExplorer == nil {
		return errors.New("schema service not configured")
	}

	table := args[0]
	columns, err := schemaExplorer.Columns(cmd.Context(), table)
	if err != nil {
		return fmt.Errorf("failed to introspect %s: %w", table, err)
	}

	nameW, typeW := len("NAME"), len("SOURCE TYPE")
	for _, col := range columns {
		if len(col.Name) > nameW {
			nameW = len(col.Name)
		}
		if len(col.SourceType) > typeW {
			typeW = len(col.SourceType)
		}
	}

	cmd.Printf("Columns of %s (%d):\n\n", table, len(columns))
	cmd.Printf("  %-*s  %-*s  %-8s  %s\n", nameW, "NAME", typeW, "SOURCE TYPE", "NULLABLE", "INFERRED")
	for _, col := range columns {
		nullable := "no"
		if col.Nullable {
			nullable = "yes"
		}
		inferred := string(col.Inferred)
		if col.PrimaryKey {
			inferred += " (primary key)"
		}
		cmd.Printf("  %-*s  %-*s  %-8s  %s\n", nameW, col.Name, typeW, col.SourceType, nullable, inferred)
	}
	return nil
}
