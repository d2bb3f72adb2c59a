// Package collection implements the CollectionStore port over the
// managed collection HTTP API: field definitions live under
// /collections/{id}/fields and item batches go to
// /collections/{id}/items/upsert. The destination owns upsert-by-id
// semantics; this adapter only ships payloads.
package collection
