package exceptions

import (
	"errors"
	"fmt"
)

// StoreErrorKind tags failures raised by the document and object stores.
type StoreErrorKind int

const (
	StoreErrorUnknown StoreErrorKind = iota
	StoreErrorConflict
	StoreErrorNotFound
	StoreErrorTransient
)

func (k StoreErrorKind) String() string {
	switch k {
	case StoreErrorConflict:
		return "conflict"
	case StoreErrorNotFound:
		return "not_found"
	case StoreErrorTransient:
		return "transient"
	default:
		return "unknown"
	}
}

type StoreError struct {
	Kind       StoreErrorKind
	Collection string
	Err        error
}

// Sentinels for errors.Is; they match any StoreError of the same kind.
var (
	ErrConflict  = &StoreError{Kind: StoreErrorConflict}
	ErrNotFound  = &StoreError{Kind: StoreErrorNotFound}
	ErrTransient = &StoreError{Kind: StoreErrorTransient}
)

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store %s on %s", e.Kind, e.Collection)
	}
	return fmt.Sprintf("store %s on %s: %s", e.Kind, e.Collection, e.Err.Error())
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Collection == "" || t.Collection == e.Collection)
}

func NewStoreConflict(collection string, err error) *StoreError {
	return &StoreError{Kind: StoreErrorConflict, Collection: collection, Err: err}
}

func NewStoreNotFound(collection string, err error) *StoreError {
	return &StoreError{Kind: StoreErrorNotFound, Collection: collection, Err: err}
}

func NewStoreTransient(collection string, err error) *StoreError {
	return &StoreError{Kind: StoreErrorTransient, Collection: collection, Err: err}
}

func NewStoreUnknown(collection string, err error) *StoreError {
	return &StoreError{Kind: StoreErrorUnknown, Collection: collection, Err: err}
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
