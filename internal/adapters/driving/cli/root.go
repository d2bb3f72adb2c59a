// Package cli implements the supasync command surface. Commands consume
// the driving ports only; main wires concrete services in via Configure.
package cli

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driving"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services the commands dispatch to. Set by Configure before Execute;
// commands guard against nil so a partial wiring fails with a clear
// message instead of a panic.
var (
	schemaExplorer driving.SchemaExplorer
	mappingService driving.MappingService
	syncEngine     driving.SyncEngine
	runStore       driven.SyncRunStore
	configStore    driven.ConfigStore

	// newSource and newCollection build stores from candidate settings so
	// connect can prove credentials work before persisting them.
	newSource     SourceFactory
	newCollection CollectionFactory
)

// SourceFactory builds a source store from candidate settings. The url and
// key apply to the postgrest kind; databaseURL and schema to postgres.
type SourceFactory func(ctx context.Context, kind, url, key, databaseURL, schema string) (driven.SourceStore, error)

// CollectionFactory builds a destination collection store from candidate
// settings.
type CollectionFactory func(url, token, collectionID string) (driven.CollectionStore, error)

// Dependencies carries everything the command surface needs.
type Dependencies struct {
	Schema        driving.SchemaExplorer
	Mappings      driving.MappingService
	Sync          driving.SyncEngine
	Runs          driven.SyncRunStore
	Config        driven.ConfigStore
	NewSource     SourceFactory
	NewCollection CollectionFactory
}

// Configure injects the services the commands dispatch to.
func Configure(deps Dependencies) {
	schemaExplorer = deps.Schema
	mappingService = deps.Mappings
	syncEngine = deps.Sync
	runStore = deps.Runs
	configStore = deps.Config
	newSource = deps.NewSource
	newCollection = deps.NewCollection
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "supasync",
	Short: "Sync Supabase tables into a managed collection",
	Long: `Supasync republishes tables from a Supabase project (or any PostgREST
server, or a direct Postgres connection) into a schema-constrained managed
collection. It introspects the source schema, infers a field mapping you can
edit, and runs snapshot sync passes that convert every value to the mapped
destination type.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print the phases of each operation")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
