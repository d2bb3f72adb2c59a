// Package postgrest implements the SourceStore port over a PostgREST
// HTTP API, the interface Supabase exposes for every project. Schema
// discovery parses the OpenAPI document served at the API root; row
// fetches are plain REST reads. All requests carry the project key as
// both bearer token and apikey header and pass through a client-side
// rate limiter.
package postgrest
