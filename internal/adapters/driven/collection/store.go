package collection

import (
	"context"
	"net/http"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/logger"
)

// Ensure Store implements the driven port.
var _ driven.CollectionStore = (*Store)(nil)

// Store talks to one managed collection.
type Store struct {
	client       *Client
	collectionID string
}

// NewStore creates a collection store for the configured collection.
func NewStore(cfg Config) (*Store, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{client: client, collectionID: cfg.CollectionID}, nil
}

// fieldDTO is the wire shape of one field definition.
type fieldDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type fieldsEnvelope struct {
	Fields []fieldDTO `json:"fields"`
}

// itemDTO is the wire shape of one upserted item.
type itemDTO struct {
	ID        string         `json:"id"`
	Slug      string         `json:"slug"`
	FieldData map[string]any `json:"fieldData"`
}

type upsertRequest struct {
	Items []itemDTO `json:"items"`
}

// GetFields returns the collection's current field definitions.
func (s *Store) GetFields(ctx context.Context) ([]domain.DestinationField, error) {
	var envelope fieldsEnvelope
	path := collectionPath(s.collectionID, "/fields")
	if err := s.client.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}

	fields := make([]domain.DestinationField, 0, len(envelope.Fields))
	for _, f := range envelope.Fields {
		fields = append(fields, domain.DestinationField{
			ID:   f.ID,
			Name: f.Name,
			Type: domain.FieldType(f.Type),
		})
	}
	return fields, nil
}

// SetFields replaces the collection's field definitions.
func (s *Store) SetFields(ctx context.Context, fields []domain.DestinationField) error {
	envelope := fieldsEnvelope{Fields: make([]fieldDTO, 0, len(fields))}
	for _, f := range fields {
		envelope.Fields = append(envelope.Fields, fieldDTO{
			ID:   f.ID,
			Name: f.Name,
			Type: string(f.Type),
		})
	}
	path := collectionPath(s.collectionID, "/fields")
	return s.client.do(ctx, http.MethodPut, path, envelope, nil)
}

// UpsertItems submits one item batch. The API keys upserts by item id.
func (s *Store) UpsertItems(ctx context.Context, items []domain.SyncItem) error {
	if len(items) == 0 {
		return nil
	}

	req := upsertRequest{Items: make([]itemDTO, 0, len(items))}
	for _, item := range items {
		req.Items = append(req.Items, itemDTO{
			ID:        item.ID,
			Slug:      item.Slug,
			FieldData: item.FieldData,
		})
	}

	path := collectionPath(s.collectionID, "/items/upsert")
	if err := s.client.do(ctx, http.MethodPost, path, req, nil); err != nil {
		return err
	}
	logger.Debug("Upserted %d items into collection %s", len(items), s.collectionID)
	return nil
}

// Close releases idle HTTP connections.
func (s *Store) Close() error {
	s.client.closeIdle()
	return nil
}
