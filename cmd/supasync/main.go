// Command supasync republishes tables from a Supabase project, a PostgREST
// server or a direct Postgres connection into a schema-constrained managed
// collection.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/adapters/driven/collection"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/adapters/driven/config/file"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/adapters/driven/storage/memory"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/adapters/driven/storage/sqlite"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/adapters/driving/cli"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/connectors/postgres"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/connectors/postgrest"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/services"
)

func main() {
	// A .env in the working directory supplies defaults; absence is normal.
	_ = godotenv.Load()

	cli.Configure(buildDependencies(context.Background()))
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildDependencies wires the concrete adapters into the command surface.
// Every piece is best-effort: a missing config file or state database
// degrades the affected commands instead of aborting startup, so `connect`
// and `version` keep working on a broken installation.
func buildDependencies(ctx context.Context) cli.Dependencies {
	var configStore driven.ConfigStore
	if store, err := file.NewConfigStore(""); err != nil {
		fmt.Fprintf(os.Stderr, "warning: config file unavailable: %v\n", err)
	} else {
		configStore = store
	}

	var (
		mappingStore driven.MappingStore
		runStore     driven.SyncRunStore
	)
	if state, err := sqlite.NewStore(""); err != nil {
		fmt.Fprintf(os.Stderr, "warning: state database unavailable, mappings and history will not persist: %v\n", err)
		mappingStore = memory.NewMappingStore()
		runStore = memory.NewSyncRunStore()
	} else {
		mappingStore = state.MappingStore()
		runStore = state.SyncRunStore()
	}

	source := openSource(ctx, configStore)
	collectionStore := openCollection(configStore)

	return cli.Dependencies{
		Schema:        services.NewSchemaService(source),
		Mappings:      services.NewMappingService(source, mappingStore),
		Sync:          services.NewSyncOrchestrator(source, collectionStore, mappingStore, runStore, nil),
		Runs:          runStore,
		Config:        configStore,
		NewSource:     newSourceStore,
		NewCollection: newCollectionStore,
	}
}

// newSourceStore builds a source store from candidate settings. Used both
// for startup wiring and by `connect` to probe credentials before saving.
func newSourceStore(ctx context.Context, kind, url, key, databaseURL, schema string) (driven.SourceStore, error) {
	switch kind {
	case "postgres":
		return postgres.NewStore(ctx, postgres.Config{DatabaseURL: databaseURL, Schema: schema})
	case "postgrest", "":
		return postgrest.NewStore(postgrest.Config{URL: url, Key: key})
	default:
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
}

func newCollectionStore(url, token, collectionID string) (driven.CollectionStore, error) {
	return collection.NewStore(collection.Config{URL: url, Token: token, CollectionID: collectionID})
}

// openSource builds the source store from the environment and the saved
// configuration, environment winning. Returns nil when no source is
// configured yet; the services then answer with their not-configured error.
func openSource(ctx context.Context, cfg driven.ConfigStore) driven.SourceStore {
	if cfg == nil {
		return nil
	}

	kind := cfg.GetString(driven.ConfigSourceKind)
	url := envOr("SUPABASE_URL", cfg.GetString(driven.ConfigSourceURL))
	key := envOr("SUPABASE_KEY", cfg.GetString(driven.ConfigSourceKey))
	databaseURL := envOr("DATABASE_URL", cfg.GetString(driven.ConfigSourceDatabaseURL))
	schema := cfg.GetString(driven.ConfigSourceSchema)

	if kind == "" {
		switch {
		case databaseURL != "":
			kind = "postgres"
		case url != "":
			kind = "postgrest"
		default:
			return nil
		}
	}

	source, err := newSourceStore(ctx, kind, url, key, databaseURL, schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: saved source configuration is unusable, run 'supasync connect': %v\n", err)
		return nil
	}
	return source
}

// openCollection builds the destination store from the environment and the
// saved configuration. Returns nil when the destination is not configured;
// dry runs still work without one.
func openCollection(cfg driven.ConfigStore) driven.CollectionStore {
	if cfg == nil {
		return nil
	}

	url := envOr("COLLECTION_URL", cfg.GetString(driven.ConfigCollectionURL))
	token := envOr("COLLECTION_TOKEN", cfg.GetString(driven.ConfigCollectionToken))
	if url == "" || token == "" {
		return nil
	}

	store, err := collection.NewStore(collection.Config{
		URL:          url,
		Token:        token,
		CollectionID: cfg.GetString(driven.ConfigCollectionID),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: saved collection configuration is unusable, run 'supasync connect': %v\n", err)
		return nil
	}
	return store
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
