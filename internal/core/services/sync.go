package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driving"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/logger"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/transform"
)

// fetchLimit caps how many rows a single pass pulls from the source.
// There is no pagination beyond the cap.
const fetchLimit = 10000

// titleTargets are the target field names considered human readable
// enough to derive item slugs from, in priority order.
var titleTargets = []string{"title", "name", "titulo", "nome", "headline"}

// Ensure SyncOrchestrator implements the driving port.
var _ driving.SyncEngine = (*SyncOrchestrator)(nil)

// SyncOrchestrator runs sync passes: fetch a bounded snapshot of source
// rows, convert every mapped value, reconcile the destination field
// list and upsert the resulting items in one batch. A pass never
// partially writes: any failure before the upsert aborts with the
// destination untouched.
type SyncOrchestrator struct {
	source     driven.SourceStore
	collection driven.CollectionStore
	mappings   driven.MappingStore
	runs       driven.SyncRunStore
	converter  *transform.Converter

	mu     sync.RWMutex
	active map[string]*driving.SyncStatus
}

// NewSyncOrchestrator creates a sync engine over the given stores.
// runs may be nil, in which case pass history is not recorded.
// A nil converter falls back to the canonical type defaults.
func NewSyncOrchestrator(
	source driven.SourceStore,
	collection driven.CollectionStore,
	mappings driven.MappingStore,
	runs driven.SyncRunStore,
	converter *transform.Converter,
) *SyncOrchestrator {
	if converter == nil {
		converter = transform.New(nil)
	}
	return &SyncOrchestrator{
		source:     source,
		collection: collection,
		mappings:   mappings,
		runs:       runs,
		converter:  converter,
		active:     make(map[string]*driving.SyncStatus),
	}
}

// Run executes a full sync pass for a table and records it to history.
func (o *SyncOrchestrator) Run(ctx context.Context, table string) domain.SyncOutcome {
	return o.pass(ctx, table, false)
}

// DryRun executes the read-only phases of a pass (validate, fetch,
// transform) and reports what a full pass would write. The destination
// store is never called.
func (o *SyncOrchestrator) DryRun(ctx context.Context, table string) domain.SyncOutcome {
	return o.pass(ctx, table, true)
}

// Status reports whether a pass is currently running for a table.
func (o *SyncOrchestrator) Status(table string) driving.SyncStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if st, ok := o.active[table]; ok {
		return *st
	}
	return driving.SyncStatus{Table: table}
}

func (o *SyncOrchestrator) pass(ctx context.Context, table string, dry bool) domain.SyncOutcome {
	started := time.Now().UTC()
	outcome := o.execute(ctx, table, dry)
	o.recordRun(ctx, table, dry, started, outcome)
	return outcome
}

func (o *SyncOrchestrator) execute(ctx context.Context, table string, dry bool) domain.SyncOutcome {
	// 1. Validate before any network call.
	if strings.TrimSpace(table) == "" {
		return failOutcome("table name required", domain.ErrTableRequired, nil, nil)
	}
	if o.source == nil || o.mappings == nil {
		return failOutcome("no source connected", domain.ErrNotConfigured, nil, nil)
	}
	if !dry && o.collection == nil {
		return failOutcome("no destination collection configured", domain.ErrNotConfigured, nil, nil)
	}

	o.setStatus(table)
	defer o.clearStatus(table)

	mappings, err := o.mappings.Get(ctx, table)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return failOutcome(fmt.Sprintf("no mapping saved for table %s", table), err, nil, nil)
		}
		return failOutcome("could not load mapping", err, nil, nil)
	}
	if err := domain.ValidateMappings(mappings); err != nil {
		return failOutcome("mapping is not syncable: "+err.Error(), err, nil, nil)
	}

	// 2. Fetch a bounded snapshot of source rows.
	if err := ctx.Err(); err != nil {
		return failOutcome("sync cancelled", err, nil, nil)
	}
	logger.Section("Fetch")
	rows, err := o.source.FetchRows(ctx, table, fetchLimit)
	if err != nil {
		cerr := &domain.ConnectionError{Store: "source", Op: "fetch rows", Err: err}
		return failOutcome("could not fetch rows from "+table, cerr, nil, nil)
	}
	logger.Info("Fetched %d rows from %s", len(rows), table)
	if len(rows) == 0 {
		return domain.SyncOutcome{Success: true, Message: "nothing to sync (0 records)"}
	}

	// 3. Convert every mapped value. Failures become type defaults and
	// diagnostics; they never abort the pass.
	if err := ctx.Err(); err != nil {
		return failOutcome("sync cancelled", err, nil, nil)
	}
	logger.Section("Transform")
	transformed, diagnostics := o.transformRows(rows, mappings)
	if len(diagnostics) > 0 {
		logger.Warn("%d values fell back to type defaults", len(diagnostics))
	}

	// 4. Reconcile the destination field list. Dry runs predict the
	// field ids locally instead of touching the destination.
	fields := predictedFields(mappings)
	if !dry {
		if err := ctx.Err(); err != nil {
			return failOutcome("sync cancelled", err, diagnostics, nil)
		}
		logger.Section("Reconcile")
		fields, err = o.reconcileFields(ctx, mappings)
		if err != nil {
			return failOutcome("destination schema update failed", err, diagnostics, nil)
		}
	}

	// 5. Build items and upsert the whole batch in one call.
	if err := ctx.Err(); err != nil {
		return failOutcome("sync cancelled", err, diagnostics, nil)
	}
	items, warnings := o.buildItems(rows, transformed, mappings, fields)

	if dry {
		return domain.SyncOutcome{
			Success:      true,
			TotalRecords: len(items),
			Message:      fmt.Sprintf("dry run: %d records ready to sync", len(items)),
			Diagnostics:  diagnostics,
			Warnings:     warnings,
		}
	}

	logger.Section("Upsert")
	if err := o.collection.UpsertItems(ctx, items); err != nil {
		uerr := &domain.UpsertError{Items: len(items), Err: err}
		return failOutcome("destination rejected the item batch", uerr, diagnostics, warnings)
	}
	logger.Info("Upserted %d items", len(items))

	return domain.SyncOutcome{
		Success:      true,
		TotalRecords: len(items),
		Message:      fmt.Sprintf("synced %d records from %s", len(items), table),
		Diagnostics:  diagnostics,
		Warnings:     warnings,
	}
}

// transformRows converts every mapped value of every row, keyed by
// target field name. Missing source columns convert as nil.
func (o *SyncOrchestrator) transformRows(rows []domain.Row, mappings []domain.FieldMapping) ([]map[string]any, []domain.TransformDiagnostic) {
	transformed := make([]map[string]any, len(rows))
	var diagnostics []domain.TransformDiagnostic

	for i, row := range rows {
		out := make(map[string]any, len(mappings))
		for _, m := range mappings {
			res := o.converter.Convert(row[m.SourceField], m.Type)
			if !res.Success {
				diagnostics = append(diagnostics, domain.TransformDiagnostic{
					RowIndex:    i,
					SourceField: m.SourceField,
					TargetField: m.TargetField,
					Type:        m.Type,
					Message:     res.Error,
				})
				logger.Debug("Row %d: %s -> %s (%s): %s", i, m.SourceField, m.TargetField, m.Type, res.Error)
			}
			out[m.TargetField] = res.Value
		}
		transformed[i] = out
	}
	return transformed, diagnostics
}

// reconcileFields aligns the destination field list with the mapping.
// Fields already present under a mapped target name keep their stored
// descriptor, so manual type choices made in the destination survive
// re-syncs; unseen target names get fresh descriptors. The returned
// slice is index-aligned with the mappings.
func (o *SyncOrchestrator) reconcileFields(ctx context.Context, mappings []domain.FieldMapping) ([]domain.DestinationField, error) {
	existing, err := o.collection.GetFields(ctx)
	if err != nil {
		return nil, &domain.ConnectionError{Store: "collection", Op: "get fields", Err: err}
	}

	byName := make(map[string]domain.DestinationField, len(existing))
	for _, f := range existing {
		byName[f.Name] = f
	}

	fields := make([]domain.DestinationField, 0, len(mappings))
	reused := 0
	for _, m := range mappings {
		if f, ok := byName[m.TargetField]; ok {
			fields = append(fields, f)
			reused++
			continue
		}
		fields = append(fields, domain.DestinationField{
			ID:   domain.FieldID(m.TargetField),
			Name: m.TargetField,
			Type: m.Type,
		})
	}
	logger.Info("Reconciled %d fields (%d reused)", len(fields), reused)

	if err := o.collection.SetFields(ctx, fields); err != nil {
		return nil, &domain.SchemaReconcileError{Err: err}
	}
	return fields, nil
}

// predictedFields derives the field list a pass would create on an
// empty destination. Used by dry runs to key item data.
func predictedFields(mappings []domain.FieldMapping) []domain.DestinationField {
	fields := make([]domain.DestinationField, 0, len(mappings))
	for _, m := range mappings {
		fields = append(fields, domain.DestinationField{
			ID:   domain.FieldID(m.TargetField),
			Name: m.TargetField,
			Type: m.Type,
		})
	}
	return fields
}

// buildItems assembles the upsert batch. Item ids come from the
// primary-key column stringified; rows with a null or blank key get a
// random opaque id and a warning. Slugs derive from the first
// title-like target field, falling back to the id.
func (o *SyncOrchestrator) buildItems(rows []domain.Row, transformed []map[string]any, mappings []domain.FieldMapping, fields []domain.DestinationField) ([]domain.SyncItem, []string) {
	pk := domain.PrimaryKeyMapping(mappings)
	titleIdx := slugSourceIndex(mappings)

	items := make([]domain.SyncItem, 0, len(rows))
	var warnings []string

	for i, row := range transformed {
		fieldData := make(map[string]any, len(mappings))
		for j, m := range mappings {
			fieldData[fields[j].ID] = row[m.TargetField]
		}

		id := o.stringValue(rows[i][pk.SourceField])
		if id == "" {
			id = uuid.NewString()
			warnings = append(warnings, fmt.Sprintf("row %d: primary key %s is null, generated id %s", i, pk.SourceField, id))
		}

		slug := ""
		if titleIdx >= 0 {
			slug = transform.Slugify(o.stringValue(rows[i][mappings[titleIdx].SourceField]))
		}
		if slug == "" {
			slug = transform.Slugify(id)
		}
		if slug == "" {
			slug = fmt.Sprintf("item-%d", i)
		}

		items = append(items, domain.SyncItem{ID: id, Slug: slug, FieldData: fieldData})
	}
	return items, warnings
}

// stringValue renders a raw source value through the string conversion,
// trimmed. Nil and unconvertible values come back empty.
func (o *SyncOrchestrator) stringValue(value any) string {
	res := o.converter.Convert(value, domain.FieldTypeString)
	s, _ := res.Value.(string)
	return strings.TrimSpace(s)
}

// slugSourceIndex picks the mapping whose target field looks like a
// human readable title. Candidates are tried in priority order, so
// "title" beats "name" when both are mapped.
func slugSourceIndex(mappings []domain.FieldMapping) int {
	for _, candidate := range titleTargets {
		for i, m := range mappings {
			if strings.ToLower(m.TargetField) == candidate {
				return i
			}
		}
	}
	return -1
}

// recordRun persists the pass to history. Best effort: a history write
// failure is logged, never surfaced as a sync failure.
func (o *SyncOrchestrator) recordRun(ctx context.Context, table string, dry bool, started time.Time, outcome domain.SyncOutcome) {
	if o.runs == nil || strings.TrimSpace(table) == "" {
		return
	}
	run := domain.SyncRun{
		ID:              uuid.NewString(),
		Table:           table,
		DryRun:          dry,
		Success:         outcome.Success,
		TotalRecords:    outcome.TotalRecords,
		Message:         outcome.Message,
		Error:           outcome.Error,
		DiagnosticCount: len(outcome.Diagnostics),
		StartedAt:       started,
		FinishedAt:      time.Now().UTC(),
	}
	if err := o.runs.Save(context.WithoutCancel(ctx), run); err != nil {
		logger.Warn("Could not record sync run: %v", err)
	}
}

func (o *SyncOrchestrator) setStatus(table string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active[table] = &driving.SyncStatus{
		Table:     table,
		Running:   true,
		StartedAt: time.Now().UTC(),
	}
}

func (o *SyncOrchestrator) clearStatus(table string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.active, table)
}

// failOutcome builds a failed outcome carrying both the human message
// and the technical error, plus whatever diagnostics accumulated
// before the failure.
func failOutcome(message string, err error, diagnostics []domain.TransformDiagnostic, warnings []string) domain.SyncOutcome {
	return domain.SyncOutcome{
		Message:     message,
		Error:       err.Error(),
		Diagnostics: diagnostics,
		Warnings:    warnings,
	}
}
