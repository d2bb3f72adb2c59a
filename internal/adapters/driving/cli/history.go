package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [table]",
	Short: "Show recent sync runs for a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if runStore == nil {
		return errors.New("history store not configured")
	}

	table := args[0]
	runs, err := runStore.ListByTable(cmd.Context(), table, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(runs) == 0 {
		cmd.Printf("No sync history for %s.\n", table)
		return nil
	}

	cmd.Printf("Last %d run(s) for %s:\n\n", len(runs), table)
	cmd.Printf("  %-25s  %-10s  %8s  %s\n", "WHEN", "RESULT", "RECORDS", "MESSAGE")
	for _, run := range runs {
		result := "ok"
		if !run.Success {
			result = "failed"
		}
		if run.DryRun {
			result += " (dry)"
		}
		message := run.Message
		if !run.Success && run.Error != "" {
			message = run.Error
		}
		cmd.Printf("  %-25s  %-10s  %8d  %s\n",
			run.StartedAt.Local().Format(time.RFC3339), result, run.TotalRecords, message)
		if run.DiagnosticCount > 0 {
			cmd.Println(mutedText.Render(fmt.Sprintf("  %27s%d conversion diagnostic(s)", "", run.DiagnosticCount)))
		}
	}
	return nil
}
