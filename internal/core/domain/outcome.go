package domain

import "time"

// TransformDiagnostic records one recovered field-level conversion failure.
// Diagnostics are accumulated during the transform phase and surfaced with
// the outcome; they never abort a row.
type TransformDiagnostic struct {
	// RowIndex is the zero-based position of the row in the fetched snapshot.
	RowIndex int

	// SourceField and TargetField identify the mapping entry that failed.
	SourceField string
	TargetField string

	// Type is the destination type the value could not be converted to.
	Type FieldType

	// Message is the transformer's failure message.
	Message string
}

// SyncOutcome is the user-visible result of one sync pass. Exactly one of
// three shapes occurs: success with a record count, success with zero
// records (connected but nothing to sync), or failure with a human-readable
// message plus technical detail.
type SyncOutcome struct {
	// Success is false only when a phase aborted the pass.
	Success bool

	// TotalRecords is the number of items submitted to the destination.
	TotalRecords int

	// Message is the human-readable summary.
	Message string

	// Error carries the technical detail string on failure.
	Error string

	// Diagnostics lists recovered per-field conversion failures.
	Diagnostics []TransformDiagnostic

	// Warnings lists non-fatal oddities, e.g. rows that needed a
	// synthesized id because the primary-key value was null.
	Warnings []string
}

// SyncRun is the persisted history record of one pass.
type SyncRun struct {
	// ID is an opaque unique identifier for the run.
	ID string

	// Table is the source table the pass targeted.
	Table string

	// DryRun marks passes that never touched the destination.
	DryRun bool

	Success         bool
	TotalRecords    int
	Message         string
	Error           string
	DiagnosticCount int

	StartedAt  time.Time
	FinishedAt time.Time
}
