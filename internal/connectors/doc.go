// Package connectors groups the source adapters. Each subpackage reaches
// the relational system of record one way: postgrest speaks the Supabase /
// PostgREST HTTP API, postgres connects straight to the database. Both
// implement driven.SourceStore and are constructed by cmd/supasync from the
// saved configuration.
package connectors
