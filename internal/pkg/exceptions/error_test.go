package exceptions

import (
	"carepulse-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCustomError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
	}{
		{"custom error passes through", ErrCannotParseJSON(errors.New("eof")), constvars.StatusBadRequest},
		{"conflict", NewStoreConflict("users", nil), constvars.StatusConflict},
		{"not found", NewStoreNotFound("appointments", nil), constvars.StatusNotFound},
		{"transient", NewStoreTransient("patients", nil), constvars.StatusServiceUnavailable},
		{"unknown store failure", NewStoreUnknown("patients", nil), constvars.StatusInternalServerError},
		{"wrapped transition", fmt.Errorf("update: %w", &TransitionError{From: "cancelled", To: "scheduled"}), constvars.StatusConflict},
		{"plain error", errors.New("boom"), constvars.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.statusCode, ToCustomError(tt.err).StatusCode)
		})
	}
}

func TestToCustomError_ClientMessageNamesResource(t *testing.T) {
	customErr := ToCustomError(NewStoreNotFound("appointments", nil))
	assert.Equal(t, "the requested appointment was not found", customErr.ClientMessage)
}

func TestStoreError_Is(t *testing.T) {
	err := fmt.Errorf("create: %w", NewStoreConflict("users", errors.New("E11000")))

	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, errors.Is(err, &StoreError{Kind: StoreErrorConflict, Collection: "users"}))
	assert.False(t, errors.Is(err, &StoreError{Kind: StoreErrorConflict, Collection: "patients"}))
}
