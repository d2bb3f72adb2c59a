package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
)

var syncDryRun bool

var syncCmd = &cobra.Command{
	Use:   "sync [table]",
	Short: "Run a sync pass for a table",
	Long: `Runs one full pass for the table: validates the saved mapping, fetches a
snapshot from the source, converts every row, reconciles the destination
schema and upserts the records. With --dry-run the destination is left
untouched and the pass reports what it would have submitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "validate, fetch and convert without writing to the destination")
	rootCmd.AddCommand(syncCmd)
}

const maxDiagnosticsShown = 5

func runSync(cmd *cobra.Command, args []string) error {
	if syncEngine == nil {
		return errors.New("sync service not configured")
	}

	table := args[0]
	if syncDryRun {
		cmd.Printf("Dry run for %s (destination will not be written)...\n", table)
	} else {
		cmd.Printf("Syncing %s...\n", table)
	}

	var outcome domain.SyncOutcome
	if syncDryRun {
		outcome = syncEngine.DryRun(cmd.Context(), table)
	} else {
		outcome = syncEngine.Run(cmd.Context(), table)
	}

	cmd.Println()
	if outcome.Success {
		cmd.Println(successBox.Render(successText.Render("Sync complete") + "\n" + outcome.Message))
	} else {
		cmd.Println(errorBox.Render(errorText.Render("Sync failed") + "\n" + outcome.Message))
	}

	if outcome.Error != "" {
		cmd.Println(mutedText.Render("  detail: " + outcome.Error))
	}

	if n := len(outcome.Diagnostics); n > 0 {
		cmd.Println()
		cmd.Println(warnText.Render(fmt.Sprintf("%d value(s) could not be converted and were dropped from their rows:", n)))
		shown := outcome.Diagnostics
		if len(shown) > maxDiagnosticsShown {
			shown = shown[:maxDiagnosticsShown]
		}
		for _, d := range shown {
			cmd.Printf("  row %d: %s -> %s (%s): %s\n", d.RowIndex, d.SourceField, d.TargetField, d.Type, d.Message)
		}
		if n > maxDiagnosticsShown {
			cmd.Println(mutedText.Render(fmt.Sprintf("  ... and %d more", n-maxDiagnosticsShown)))
		}
	}

	for _, w := range outcome.Warnings {
		cmd.Println(warnText.Render("  warning: " + w))
	}

	if syncDryRun && outcome.Success {
		cmd.Println()
		cmd.Println(mutedText.Render("Dry run only. Re-run without --dry-run to write these records."))
	}

	if !outcome.Success {
		return fmt.Errorf("sync failed: %s", outcome.Message)
	}
	return nil
}
