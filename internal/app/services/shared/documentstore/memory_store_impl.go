package documentstore

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Documents are kept as their JSON form, so field names are the json tags. The
// id lives under "id" and queries on "_id" are mapped onto it.
const memoryIDField = "id"

type MemoryStoreOption func(*memoryStore)

// WithUniqueField rejects a second record in collection sharing field's value.
func WithUniqueField(collection, field string) MemoryStoreOption {
	return func(s *memoryStore) {
		s.unique[collection] = append(s.unique[collection], field)
	}
}

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
	unique      map[string][]string
}

func NewMemoryStore(opts ...MemoryStoreOption) contracts.DocumentStore {
	store := &memoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
		unique:      make(map[string][]string),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *memoryStore) CreateRecord(ctx context.Context, collection string, document interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", exceptions.NewStoreTransient(collection, err)
	}

	record, err := toRecord(document)
	if err != nil {
		return "", exceptions.NewStoreUnknown(collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.collection(collection)
	for _, field := range s.unique[collection] {
		value, ok := record[field]
		if !ok {
			continue
		}
		for _, existing := range records {
			if reflect.DeepEqual(existing[field], value) {
				return "", exceptions.NewStoreConflict(collection, fmt.Errorf("duplicate value for %s", field))
			}
		}
	}

	id := uuid.NewString()
	record[memoryIDField] = id
	records[id] = record
	return id, nil
}

func (s *memoryStore) GetRecord(ctx context.Context, collection, id string, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return exceptions.NewStoreTransient(collection, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.collections[collection][id]
	if !ok {
		return exceptions.NewStoreNotFound(collection, fmt.Errorf("record %s", id))
	}
	return decodeInto(collection, record, out)
}

func (s *memoryStore) QueryRecords(ctx context.Context, collection string, query contracts.Query, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return exceptions.NewStoreTransient(collection, err)
	}

	filters := make([]contracts.Filter, 0, len(query.Filters))
	for _, filter := range query.Filters {
		if filter.Field == mongoIDField {
			filter.Field = memoryIDField
		}
		value, err := normalize(filter.Value)
		if err != nil {
			return exceptions.NewStoreUnknown(collection, err)
		}
		filters = append(filters, contracts.Filter{Field: filter.Field, Value: value})
	}

	s.mu.RLock()
	matched := make([]map[string]interface{}, 0)
	for _, record := range s.collections[collection] {
		if matches(record, filters) {
			matched = append(matched, record)
		}
	}
	s.mu.RUnlock()

	if query.SortBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i][query.SortBy], matched[j][query.SortBy])
			if query.Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	if query.Limit > 0 && int64(len(matched)) > query.Limit {
		matched = matched[:query.Limit]
	}

	return decodeInto(collection, matched, out)
}

func (s *memoryStore) UpdateRecord(ctx context.Context, collection, id string, fields map[string]interface{}, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return exceptions.NewStoreTransient(collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.collections[collection][id]
	if !ok {
		return exceptions.NewStoreNotFound(collection, fmt.Errorf("record %s", id))
	}

	updated := make(map[string]interface{}, len(record)+len(fields))
	for key, value := range record {
		updated[key] = value
	}
	for key, value := range fields {
		if key == mongoIDField || key == memoryIDField {
			return exceptions.NewStoreUnknown(collection, fmt.Errorf("%s cannot be updated", key))
		}
		normalized, err := normalize(value)
		if err != nil {
			return exceptions.NewStoreUnknown(collection, err)
		}
		updated[key] = normalized
	}
	s.collections[collection][id] = updated

	if out == nil {
		return nil
	}
	return decodeInto(collection, updated, out)
}

func (s *memoryStore) DeleteRecord(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return exceptions.NewStoreTransient(collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return exceptions.NewStoreNotFound(collection, fmt.Errorf("record %s", id))
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *memoryStore) collection(name string) map[string]map[string]interface{} {
	records, ok := s.collections[name]
	if !ok {
		records = make(map[string]map[string]interface{})
		s.collections[name] = records
	}
	return records
}

func toRecord(document interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}
	record := make(map[string]interface{})
	err = json.Unmarshal(raw, &record)
	if err != nil {
		return nil, fmt.Errorf("document must encode to a JSON object: %w", err)
	}
	return record, nil
}

// normalize gives a Go value the shape it would have after a JSON round trip,
// so it compares equal to stored fields.
func normalize(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var normalized interface{}
	err = json.Unmarshal(raw, &normalized)
	return normalized, err
}

func decodeInto(collection string, value interface{}, out interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return exceptions.NewStoreUnknown(collection, err)
	}
	err = json.Unmarshal(raw, out)
	if err != nil {
		return exceptions.NewStoreUnknown(collection, err)
	}
	return nil
}

func matches(record map[string]interface{}, filters []contracts.Filter) bool {
	for _, filter := range filters {
		value := record[filter.Field]
		if options, ok := filter.Value.([]interface{}); ok {
			found := false
			for _, option := range options {
				if reflect.DeepEqual(value, option) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(value, filter.Value) {
			return false
		}
	}
	return true
}

// compareValues orders timestamps chronologically rather than lexically,
// since encoded times may differ in fractional second width.
func compareValues(a, b interface{}) int {
	switch left := a.(type) {
	case float64:
		right, ok := b.(float64)
		if !ok {
			break
		}
		switch {
		case left < right:
			return -1
		case left > right:
			return 1
		}
		return 0
	case string:
		right, ok := b.(string)
		if !ok {
			break
		}
		leftTime, leftErr := time.Parse(time.RFC3339Nano, left)
		rightTime, rightErr := time.Parse(time.RFC3339Nano, right)
		if leftErr == nil && rightErr == nil {
			return leftTime.Compare(rightTime)
		}
		switch {
		case left < right:
			return -1
		case left > right:
			return 1
		}
		return 0
	}

	switch {
	case a == nil && b != nil:
		return -1
	case a != nil && b == nil:
		return 1
	}
	return 0
}
