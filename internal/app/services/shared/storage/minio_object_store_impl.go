package storage

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioObjectStore struct {
	MinioClient    *minio.Client
	BucketName     string
	PublicEndpoint string
	ProjectID      string
	Log            *zap.Logger
}

func NewMinioObjectStore(minioClient *minio.Client, bucketName, publicEndpoint, projectID string, logger *zap.Logger) contracts.ObjectStore {
	return &minioObjectStore{
		MinioClient:    minioClient,
		BucketName:     bucketName,
		PublicEndpoint: strings.TrimRight(publicEndpoint, "/"),
		ProjectID:      projectID,
		Log:            logger,
	}
}

func (m *minioObjectStore) PutObject(ctx context.Context, input *contracts.PutObjectInput) (*models.StoredObject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectID := uuid.NewString()
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectID, input.Body, input.Size, minio.PutObjectOptions{
		ContentType:  input.ContentType,
		UserMetadata: map[string]string{"filename": input.FileName},
	})
	if err != nil {
		m.Log.Error("minioObjectStore.PutObject error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, m.BucketName),
			zap.String(constvars.LoggingFileNameKey, input.FileName),
			zap.Error(err),
		)
		return nil, classifyMinioError(m.BucketName, err)
	}

	m.Log.Info("minioObjectStore.PutObject succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, m.BucketName),
		zap.String(constvars.LoggingObjectIDKey, objectID),
		zap.Int64(constvars.LoggingFileSizeKey, input.Size),
	)
	return &models.StoredObject{
		ID:  objectID,
		URL: ObjectViewURL(m.PublicEndpoint, m.BucketName, objectID, m.ProjectID),
	}, nil
}

// DeleteObject reports a missing object as not found; RemoveObject alone
// succeeds for absent keys.
func (m *minioObjectStore) DeleteObject(ctx context.Context, objectID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	_, err := m.MinioClient.StatObject(ctx, m.BucketName, objectID, minio.StatObjectOptions{})
	if err == nil {
		err = m.MinioClient.RemoveObject(ctx, m.BucketName, objectID, minio.RemoveObjectOptions{})
	}
	if err != nil {
		m.Log.Error("minioObjectStore.DeleteObject error removing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, m.BucketName),
			zap.String(constvars.LoggingObjectIDKey, objectID),
			zap.Error(err),
		)
		return classifyMinioError(m.BucketName, err)
	}
	return nil
}

// ObjectViewURL is the public address patients' documents are linked under.
func ObjectViewURL(endpoint, bucketName, objectID, projectID string) string {
	return fmt.Sprintf(constvars.StorageObjectViewURLFormat, endpoint, bucketName, objectID, projectID)
}
