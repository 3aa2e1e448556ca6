package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-api/internal/storage"
)

type memoryStorage struct {
	objects map[string][]byte
	putErr  error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}}
}

func (m *memoryStorage) PutObject(_ context.Context, body io.Reader, opts storage.PutOptions) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[opts.Key] = data
	return "s3://" + opts.Bucket + "/" + opts.Key, nil
}

func (m *memoryStorage) ListObjects(_ context.Context, _ string, prefix string) ([]storage.ObjectInfo, error) {
	var out []storage.ObjectInfo
	for key, data := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.ObjectInfo{Key: key, Size: int64(len(data))})
		}
	}
	return out, nil
}

func (m *memoryStorage) GetObjectURL(_ context.Context, bucket, key string, expires time.Duration) (string, error) {
	return "https://" + bucket + ".example/" + key + "?ttl=" + expires.String(), nil
}

func TestExportService_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.categories.Create(ctx, CategoryInput{Title: "Fruit", Description: "Fresh"})
	require.NoError(t, err)
	_, err = env.products.Create(ctx, ProductInput{Name: "Pear", CategoryID: c.ID, Price: 1.2})
	require.NoError(t, err)

	store := newMemoryStorage()
	exports := NewExportService(env.categories, env.products, store, "bucket", "/snapshots/").(*exportService)
	exports.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	res, err := exports.Create(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Key, "snapshots/20260304T050607Z-"), res.Key)
	assert.True(t, strings.HasSuffix(res.Key, ".json"))
	assert.Equal(t, "s3://bucket/"+res.Key, res.Location)

	var snap snapshot
	require.NoError(t, json.Unmarshal(store.objects[res.Key], &snap))
	require.Len(t, snap.Categories, 1)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Pear", snap.Products[0].Name)
	assert.Equal(t, "Fruit", snap.Products[0].CategoryTitle)

	listed, err := exports.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, res.Key, listed[0].Key)
	assert.Contains(t, listed[0].URL, "ttl=15m0s")
}

func TestExportService_NotConfigured(t *testing.T) {
	env := newTestEnv(t)

	exports := NewExportService(env.categories, env.products, nil, "", "x")
	_, err := exports.Create(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotConfigured)
	_, err = exports.List(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotConfigured)
}

func TestExportService_UploadFailure(t *testing.T) {
	env := newTestEnv(t)

	store := newMemoryStorage()
	store.putErr = errors.New("bucket gone")
	exports := NewExportService(env.categories, env.products, store, "bucket", "")

	_, err := exports.Create(context.Background())
	assert.EqualError(t, err, "bucket gone")
}
