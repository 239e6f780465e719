package storage

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryObjectStore keeps uploaded objects in process. Objects is exported so
// callers can inspect what was stored.
type MemoryObjectStore struct {
	mu             sync.Mutex
	Objects        map[string][]byte
	BucketName     string
	PublicEndpoint string
	ProjectID      string
}

func NewMemoryObjectStore(bucketName, publicEndpoint, projectID string) *MemoryObjectStore {
	return &MemoryObjectStore{
		Objects:        make(map[string][]byte),
		BucketName:     bucketName,
		PublicEndpoint: strings.TrimRight(publicEndpoint, "/"),
		ProjectID:      projectID,
	}
}

var _ contracts.ObjectStore = (*MemoryObjectStore)(nil)

func (m *MemoryObjectStore) PutObject(ctx context.Context, input *contracts.PutObjectInput) (*models.StoredObject, error) {
	content, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, exceptions.NewStoreUnknown(m.BucketName, err)
	}

	objectID := uuid.NewString()
	m.mu.Lock()
	m.Objects[objectID] = content
	m.mu.Unlock()

	return &models.StoredObject{
		ID:  objectID,
		URL: ObjectViewURL(m.PublicEndpoint, m.BucketName, objectID, m.ProjectID),
	}, nil
}

func (m *MemoryObjectStore) DeleteObject(ctx context.Context, objectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Objects[objectID]; !ok {
		return exceptions.NewStoreNotFound(m.BucketName, fmt.Errorf("object %s not found", objectID))
	}
	delete(m.Objects, objectID)
	return nil
}

func (m *MemoryObjectStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Objects)
}
