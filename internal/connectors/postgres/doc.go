// Package postgres implements the SourceStore port over a direct
// Postgres connection, for setups where the database is reachable but
// the PostgREST surface is not (self-hosted Supabase, plain Postgres).
// Schema discovery queries information_schema; row fetches run
// SELECT * with a LIMIT against validated identifiers.
package postgres
