package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
)

// --- Shared mock stores for service testing ---

// mockSourceStore implements driven.SourceStore with injectable data
// and failures. Also used by schema_test.go and sync_test.go.
type mockSourceStore struct {
	kind        string
	validateErr error
	tables      []string
	tablesErr   error
	columns     map[string][]domain.ColumnDescriptor
	columnsErr  error
	rows        map[string][]domain.Row
	rowsErr     error

	columnCalls int
	fetchCalls  int
	lastLimit   int

	// Optional synchronization hooks for concurrency tests.
	fetchStarted chan struct{}
	fetchRelease chan struct{}
}

var _ driven.SourceStore = (*mockSourceStore)(nil)

func (m *mockSourceStore) Kind() string {
	if m.kind == "" {
		return "mock"
	}
	return m.kind
}

func (m *mockSourceStore) Validate(_ context.Context) error { return m.validateErr }

func (m *mockSourceStore) ListTables(_ context.Context) ([]string, error) {
	if m.tablesErr != nil {
		return nil, m.tablesErr
	}
	return m.tables, nil
}

func (m *mockSourceStore) ListColumns(_ context.Context, table string) ([]domain.ColumnDescriptor, error) {
	m.columnCalls++
	if m.columnsErr != nil {
		return nil, m.columnsErr
	}
	return m.columns[table], nil
}

func (m *mockSourceStore) FetchRows(_ context.Context, table string, limit int) ([]domain.Row, error) {
	m.fetchCalls++
	m.lastLimit = limit
	if m.fetchStarted != nil {
		close(m.fetchStarted)
	}
	if m.fetchRelease != nil {
		<-m.fetchRelease
	}
	if m.rowsErr != nil {
		return nil, m.rowsErr
	}
	return m.rows[table], nil
}

func (m *mockSourceStore) Close() error { return nil }

// mockMappingStore implements driven.MappingStore in memory.
type mockMappingStore struct {
	sets    map[string][]domain.FieldMapping
	getErr  error
	saveErr error
	saves   int
}

var _ driven.MappingStore = (*mockMappingStore)(nil)

func newMockMappingStore() *mockMappingStore {
	return &mockMappingStore{sets: make(map[string][]domain.FieldMapping)}
}

func (m *mockMappingStore) Save(_ context.Context, table string, mappings []domain.FieldMapping) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.sets[table] = append([]domain.FieldMapping(nil), mappings...)
	return nil
}

func (m *mockMappingStore) Get(_ context.Context, table string) ([]domain.FieldMapping, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	set, ok := m.sets[table]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]domain.FieldMapping(nil), set...), nil
}

func (m *mockMappingStore) Delete(_ context.Context, table string) error {
	if _, ok := m.sets[table]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sets, table)
	return nil
}

func (m *mockMappingStore) Tables(_ context.Context) ([]string, error) {
	tables := make([]string, 0, len(m.sets))
	for t := range m.sets {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	return tables, nil
}

// postsColumns is the introspection fixture used across service tests.
func postsColumns() []domain.ColumnDescriptor {
	return []domain.ColumnDescriptor{
		{Name: "id", SourceType: "int4", Nullable: false, PrimaryKey: true},
		{Name: "title", SourceType: "text", Nullable: false},
		{Name: "created_at", SourceType: "timestamptz", Nullable: true},
	}
}

func newMappingFixture() (*MappingService, *mockSourceStore, *mockMappingStore) {
	source := &mockSourceStore{
		columns: map[string][]domain.ColumnDescriptor{"posts": postsColumns()},
	}
	store := newMockMappingStore()
	return NewMappingService(source, store), source, store
}

func TestNewMappingService(t *testing.T) {
	svc, _, _ := newMappingFixture()

	require.NotNil(t, svc)
	assert.NotNil(t, svc.source)
	assert.NotNil(t, svc.store)
}

func TestMappingService_Build_InfersFromSchema(t *testing.T) {
	svc, _, store := newMappingFixture()
	ctx := context.Background()

	got, err := svc.Build(ctx, "posts")

	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "id", got[0].SourceField)
	assert.Equal(t, "id", got[0].TargetField)
	assert.Equal(t, domain.FieldTypeNumber, got[0].Type)
	assert.True(t, got[0].PrimaryKey)

	assert.Equal(t, domain.FieldTypeString, got[1].Type)
	assert.False(t, got[1].PrimaryKey)

	assert.Equal(t, domain.FieldTypeDate, got[2].Type)

	// The inferred set is persisted so later edits have a stable base.
	saved, err := store.Get(ctx, "posts")
	require.NoError(t, err)
	assert.Equal(t, got, saved)
}

func TestMappingService_Build_RestoresSavedSet(t *testing.T) {
	svc, source, store := newMappingFixture()
	ctx := context.Background()

	custom := []domain.FieldMapping{
		{SourceField: "id", TargetField: "id", Type: domain.FieldTypeNumber, PrimaryKey: true},
		{SourceField: "title", TargetField: "body", Type: domain.FieldTypeFormattedText},
	}
	require.NoError(t, store.Save(ctx, "posts", custom))
	source.columnsErr = errors.New("introspection must not run")

	got, err := svc.Build(ctx, "posts")

	require.NoError(t, err)
	assert.Equal(t, custom, got)
	assert.Zero(t, source.columnCalls)
}

func TestMappingService_Build_TableRequired(t *testing.T) {
	svc, _, _ := newMappingFixture()

	for _, table := range []string{"", "   "} {
		_, err := svc.Build(context.Background(), table)
		assert.ErrorIs(t, err, domain.ErrTableRequired)
	}
}

func TestMappingService_Build_UnknownTable(t *testing.T) {
	svc, _, _ := newMappingFixture()

	_, err := svc.Build(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMappingService_Build_SourceError(t *testing.T) {
	svc, source, _ := newMappingFixture()
	source.columnsErr = errors.New("connection refused")

	_, err := svc.Build(context.Background(), "posts")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list columns")
}

func TestMappingService_Build_CompositeKeySingleFlag(t *testing.T) {
	svc, source, _ := newMappingFixture()
	source.columns["order_items"] = []domain.ColumnDescriptor{
		{Name: "order_id", SourceType: "int4", PrimaryKey: true},
		{Name: "product_id", SourceType: "int4", PrimaryKey: true},
		{Name: "quantity", SourceType: "int4"},
	}

	got, err := svc.Build(context.Background(), "order_items")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].PrimaryKey)
	assert.False(t, got[1].PrimaryKey)
	assert.False(t, got[2].PrimaryKey)
}

func TestMappingService_Build_NotConfigured(t *testing.T) {
	svc := NewMappingService(nil, nil)

	_, err := svc.Build(context.Background(), "posts")

	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestMappingService_Get(t *testing.T) {
	svc, _, store := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Get(ctx, "posts")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	built, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "posts")
	require.NoError(t, err)
	assert.Equal(t, built, got)
	assert.Equal(t, 1, store.saves)
}

func TestMappingService_Validate(t *testing.T) {
	svc, _, store := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)
	assert.NoError(t, svc.Validate(ctx, "posts"))

	// A set without a primary key is stored fine but not syncable.
	store.sets["posts"][0].PrimaryKey = false
	assert.ErrorIs(t, svc.Validate(ctx, "posts"), domain.ErrNoPrimaryKey)

	assert.ErrorIs(t, svc.Validate(ctx, "missing"), domain.ErrNotFound)
}

func TestMappingService_SetType(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	require.NoError(t, svc.SetType(ctx, "posts", "title", domain.FieldTypeFormattedText))

	got, err := svc.Get(ctx, "posts")
	require.NoError(t, err)
	assert.Equal(t, domain.FieldTypeFormattedText, got[1].Type)
}

func TestMappingService_SetType_Rejections(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	tests := []struct {
		name        string
		sourceField string
		fieldType   domain.FieldType
		wantErr     error
	}{
		{"internal type", "title", domain.FieldTypeObject, domain.ErrInternalFieldType},
		{"unknown type", "title", domain.FieldType("banana"), domain.ErrUnknownFieldType},
		{"missing field", "nope", domain.FieldTypeString, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetType(ctx, "posts", tt.sourceField, tt.fieldType)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMappingService_SetTarget(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	require.NoError(t, svc.SetTarget(ctx, "posts", "title", "headline"))

	got, err := svc.Get(ctx, "posts")
	require.NoError(t, err)
	assert.Equal(t, "headline", got[1].TargetField)

	assert.ErrorIs(t, svc.SetTarget(ctx, "posts", "title", "  "), domain.ErrEmptyTargetField)
}

func TestMappingService_SetTarget_CollisionSurfacesAtValidate(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	// Renaming onto an existing target is stored; Validate flags it.
	// This lets users swap two names in any order.
	require.NoError(t, svc.SetTarget(ctx, "posts", "title", "created_at"))
	assert.ErrorIs(t, svc.Validate(ctx, "posts"), domain.ErrDuplicateTargetField)
}

func TestMappingService_SetPrimaryKey(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	require.NoError(t, svc.SetPrimaryKey(ctx, "posts", "title"))

	got, err := svc.Get(ctx, "posts")
	require.NoError(t, err)
	assert.False(t, got[0].PrimaryKey)
	assert.True(t, got[1].PrimaryKey)
	assert.NoError(t, svc.Validate(ctx, "posts"))

	assert.ErrorIs(t, svc.SetPrimaryKey(ctx, "posts", "nope"), domain.ErrNotFound)
}

func TestMappingService_Remove(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "posts", "created_at"))

	got, err := svc.Get(ctx, "posts")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "id", got[0].SourceField)
	assert.Equal(t, "title", got[1].SourceField)

	assert.ErrorIs(t, svc.Remove(ctx, "posts", "created_at"), domain.ErrNotFound)
}

func TestMappingService_Remove_LastEntryFailsValidate(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "posts", "title"))
	require.NoError(t, svc.Remove(ctx, "posts", "created_at"))
	require.NoError(t, svc.Remove(ctx, "posts", "id"))

	assert.ErrorIs(t, svc.Validate(ctx, "posts"), domain.ErrEmptyMapping)
}

func TestMappingService_Save_Import(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	imported := []domain.FieldMapping{
		{SourceField: "id", TargetField: "id", Type: domain.FieldTypeNumber, PrimaryKey: true},
		{SourceField: "name", TargetField: "name", Type: domain.FieldTypeString},
	}
	require.NoError(t, svc.Save(ctx, "authors", imported))

	got, err := svc.Get(ctx, "authors")
	require.NoError(t, err)
	assert.Equal(t, imported, got)
}

func TestMappingService_Save_Rejections(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		mappings []domain.FieldMapping
		wantErr  error
	}{
		{
			name:     "empty set",
			mappings: nil,
			wantErr:  domain.ErrEmptyMapping,
		},
		{
			name: "duplicate targets",
			mappings: []domain.FieldMapping{
				{SourceField: "a", TargetField: "x", Type: domain.FieldTypeString, PrimaryKey: true},
				{SourceField: "b", TargetField: "x", Type: domain.FieldTypeString},
			},
			wantErr: domain.ErrDuplicateTargetField,
		},
		{
			name: "two primary keys",
			mappings: []domain.FieldMapping{
				{SourceField: "a", TargetField: "a", Type: domain.FieldTypeString, PrimaryKey: true},
				{SourceField: "b", TargetField: "b", Type: domain.FieldTypeString, PrimaryKey: true},
			},
			wantErr: domain.ErrMultiplePrimaryKeys,
		},
		{
			name: "internal type",
			mappings: []domain.FieldMapping{
				{SourceField: "a", TargetField: "a", Type: domain.FieldTypeObject, PrimaryKey: true},
			},
			wantErr: domain.ErrInternalFieldType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Save(ctx, "authors", tt.mappings)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMappingService_Save_ToleratesMissingKey(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	// A keyless set can be imported first and keyed afterwards.
	keyless := []domain.FieldMapping{
		{SourceField: "name", TargetField: "name", Type: domain.FieldTypeString},
	}
	require.NoError(t, svc.Save(ctx, "authors", keyless))
	require.NoError(t, svc.SetPrimaryKey(ctx, "authors", "name"))
	assert.NoError(t, svc.Validate(ctx, "authors"))
}

func TestMappingService_Reset(t *testing.T) {
	svc, _, _ := newMappingFixture()
	ctx := context.Background()

	_, err := svc.Build(ctx, "posts")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, "posts"))

	_, err = svc.Get(ctx, "posts")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Resetting a table without a mapping is a no-op.
	assert.NoError(t, svc.Reset(ctx, "posts"))
}
