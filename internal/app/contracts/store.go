package contracts

import (
	"carepulse-service/internal/app/models"
	"context"
	"io"
)

// Filter is an exact-match condition on a document field. A []string Value
// matches any of the listed values.
type Filter struct {
	Field string
	Value interface{}
}

type Query struct {
	Filters    []Filter
	SortBy     string
	Descending bool
	Limit      int64
}

// DocumentStore is the persistence capability set the services are built on.
// Implementations report failures as *exceptions.StoreError.
type DocumentStore interface {
	// CreateRecord assigns the record id and returns it.
	CreateRecord(ctx context.Context, collection string, document interface{}) (string, error)
	GetRecord(ctx context.Context, collection, id string, out interface{}) error
	// QueryRecords decodes the matching documents into out, a pointer to a slice.
	QueryRecords(ctx context.Context, collection string, query Query, out interface{}) error
	// UpdateRecord sets the given fields and decodes the updated document into out.
	UpdateRecord(ctx context.Context, collection, id string, fields map[string]interface{}, out interface{}) error
	DeleteRecord(ctx context.Context, collection, id string) error
}

type PutObjectInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ObjectStore interface {
	PutObject(ctx context.Context, input *PutObjectInput) (*models.StoredObject, error)
	DeleteObject(ctx context.Context, objectID string) error
}
