package storage

import (
	"bytes"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectViewURL(t *testing.T) {
	url := ObjectViewURL("https://cloud.example.com/v1", "ids", "file-1", "carepulse")
	assert.Equal(t, "https://cloud.example.com/v1/storage/buckets/ids/files/file-1/view?project=carepulse", url)
}

func TestMemoryObjectStore_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryObjectStore("ids", "http://localhost:9000", "carepulse")

	object, err := store.PutObject(ctx, &contracts.PutObjectInput{
		FileName:    "id.png",
		ContentType: "image/png",
		Size:        3,
		Body:        bytes.NewReader([]byte{1, 2, 3}),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Contains(t, object.URL, "/files/"+object.ID+"/view?project=carepulse")

	require.NoError(t, store.DeleteObject(ctx, object.ID))
	assert.Equal(t, 0, store.Len())

	err = store.DeleteObject(ctx, object.ID)
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, exceptions.ToCustomError(err).StatusCode)
}

func TestMemoryObjectStore_TrimsEndpoint(t *testing.T) {
	store := NewMemoryObjectStore("ids", "http://localhost:9000/", "carepulse")

	object, err := store.PutObject(context.Background(), &contracts.PutObjectInput{
		FileName: "id.png",
		Size:     1,
		Body:     bytes.NewReader([]byte{1}),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/storage/buckets/ids/files/"+object.ID+"/view?project=carepulse", object.URL)
}
