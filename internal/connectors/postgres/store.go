package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/logger"
)

// Ensure Store implements the driven port.
var _ driven.SourceStore = (*Store)(nil)

// Store reads tables, schema and rows from a Postgres database through
// a pgx connection pool.
type Store struct {
	pool   *pgxpool.Pool
	schema string
}

// NewStore connects a pool and pings it so a bad URL fails at
// configuration time, not mid-sync.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return &Store{pool: pool, schema: cfg.schemaOrDefault()}, nil
}

// Kind identifies this source type.
func (s *Store) Kind() string { return "postgres" }

// Validate pings the database.
func (s *Store) Validate(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: ping: %w", err)
	}
	return nil
}

const tablesQuery = `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = $1 AND table_type = 'BASE TABLE'
ORDER BY table_name;
`

// ListTables returns the base tables of the configured schema.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, tablesQuery, s.schema)
	if err != nil {
		return nil, fmt.Errorf("postgres: query tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("postgres: scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate tables: %w", err)
	}
	return tables, nil
}

const columnsQuery = `
SELECT
	c.column_name,
	c.udt_name,
	(c.is_nullable = 'YES') AS is_nullable,
	COALESCE(pk.is_primary, false) AS is_primary
FROM information_schema.columns c
LEFT JOIN (
	SELECT kcu.column_name, true AS is_primary
	FROM information_schema.table_constraints tc
	JOIN information_schema.key_column_usage kcu
		ON tc.constraint_name = kcu.constraint_name
		AND tc.table_schema = kcu.table_schema
		AND tc.table_name = kcu.table_name
	WHERE tc.table_schema = $1 AND tc.table_name = $2
		AND tc.constraint_type = 'PRIMARY KEY'
) pk ON c.column_name = pk.column_name
WHERE c.table_schema = $1 AND c.table_name = $2
ORDER BY c.ordinal_position;
`

// ListColumns describes one table's columns in ordinal order. udt_name
// carries the concise type spelling (int4, timestamptz) that matches
// what PostgREST reports as format.
func (s *Store) ListColumns(ctx context.Context, table string) ([]domain.ColumnDescriptor, error) {
	rows, err := s.pool.Query(ctx, columnsQuery, s.schema, table)
	if err != nil {
		return nil, fmt.Errorf("postgres: query columns: %w", err)
	}
	defer rows.Close()

	var columns []domain.ColumnDescriptor
	for rows.Next() {
		var col domain.ColumnDescriptor
		if err := rows.Scan(&col.Name, &col.SourceType, &col.Nullable, &col.PrimaryKey); err != nil {
			return nil, fmt.Errorf("postgres: scan column: %w", err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s: %w", table, domain.ErrNotFound)
	}
	return columns, nil
}

// FetchRows reads up to limit rows. The table name is validated and
// quoted; the limit rides as a bind parameter.
func (s *Store) FetchRows(ctx context.Context, table string, limit int) ([]domain.Row, error) {
	if err := validateIdent(table); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM %s.%s LIMIT $1", quoteIdent(s.schema), quoteIdent(table))
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: query rows: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []domain.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("postgres: read row: %w", err)
		}
		row := make(domain.Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate rows: %w", err)
	}
	logger.Debug("Fetched %d rows from %s.%s", len(out), s.schema, table)
	return out, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
