package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the source tables",
	RunE:  runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, _ []string) error {
	if schemaExplorer == nil {
		return errors.New("schema service not configured")
	}

	tables, err := schemaExplorer.Tables(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	if len(tables) == 0 {
		cmd.Println("No tables found.")
		return nil
	}

	cmd.Printf("Source tables (%d):\n", len(tables))
	for _, table := range tables {
		cmd.Printf("  %s\n", table)
	}
	return nil
}
