package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/logger"
)

// Ensure Store implements the driven port.
var _ driven.SourceStore = (*Store)(nil)

// Store reads tables, schema and rows from a PostgREST API. The root
// OpenAPI document is fetched once and cached for the lifetime of the
// store; Validate always refetches.
type Store struct {
	client *Client

	mu  sync.Mutex
	doc *openAPIDocument
}

// NewStore creates a PostgREST source store.
func NewStore(cfg Config) (*Store, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

// Kind identifies this source type.
func (s *Store) Kind() string { return "postgrest" }

// Validate fetches the root document to prove the URL and key work.
func (s *Store) Validate(ctx context.Context) error {
	doc, err := s.fetchRoot(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	logger.Debug("PostgREST root exposes %d definitions", len(doc.Definitions))
	return nil
}

// ListTables returns the exposed table names.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	doc, err := s.root(ctx)
	if err != nil {
		return nil, err
	}
	return doc.tables(), nil
}

// ListColumns describes one table's columns from the root document.
func (s *Store) ListColumns(ctx context.Context, table string) ([]domain.ColumnDescriptor, error) {
	doc, err := s.root(ctx)
	if err != nil {
		return nil, err
	}
	def, ok := doc.Definitions[table]
	if !ok {
		return nil, fmt.Errorf("table %s: %w", table, domain.ErrNotFound)
	}
	return def.columns(), nil
}

// FetchRows reads up to limit rows from a table.
func (s *Store) FetchRows(ctx context.Context, table string, limit int) ([]domain.Row, error) {
	path := "/" + url.PathEscape(table) + "?limit=" + strconv.Itoa(limit)
	var rows []domain.Row
	if err := s.client.getJSON(ctx, path, &rows); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("table %s: %w", table, domain.ErrNotFound)
		}
		return nil, err
	}
	return rows, nil
}

// Close releases idle HTTP connections.
func (s *Store) Close() error {
	s.client.closeIdle()
	return nil
}

// root returns the cached OpenAPI document, fetching it on first use.
func (s *Store) root(ctx context.Context) (*openAPIDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc != nil {
		return s.doc, nil
	}
	doc, err := s.fetchRoot(ctx)
	if err != nil {
		return nil, err
	}
	s.doc = doc
	return doc, nil
}

func (s *Store) fetchRoot(ctx context.Context) (*openAPIDocument, error) {
	var doc openAPIDocument
	if err := s.client.getJSON(ctx, "/", &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
