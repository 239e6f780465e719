package storage

import (
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/minio/minio-go/v7"
)

const (
	minioCodeNoSuchKey    = "NoSuchKey"
	minioCodeNoSuchBucket = "NoSuchBucket"
	minioCodeSlowDown     = "SlowDown"
)

// classifyMinioError tags an object storage error with the store error kind,
// using the bucket as the collection.
func classifyMinioError(bucket string, err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return exceptions.NewStoreTransient(bucket, err)
	}

	response := minio.ToErrorResponse(err)
	switch {
	case response.Code == minioCodeNoSuchKey, response.Code == minioCodeNoSuchBucket:
		return exceptions.NewStoreNotFound(bucket, err)
	case response.Code == minioCodeSlowDown, response.StatusCode >= http.StatusInternalServerError:
		return exceptions.NewStoreTransient(bucket, err)
	default:
		return exceptions.NewStoreUnknown(bucket, err)
	}
}
