package documentstore

import (
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// classifyMongoError tags a driver error with the store error kind the
// services branch on.
func classifyMongoError(collection string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return exceptions.NewStoreNotFound(collection, err)
	case mongo.IsDuplicateKeyError(err):
		return exceptions.NewStoreConflict(collection, err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err), errors.Is(err, context.DeadlineExceeded):
		return exceptions.NewStoreTransient(collection, err)
	default:
		return exceptions.NewStoreUnknown(collection, err)
	}
}
