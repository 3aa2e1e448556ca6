package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-api/internal/config"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestBuildStorage_NoBucket(t *testing.T) {
	svc, err := buildStorage(context.Background(), config.Config{}, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestBuildStorage_WrapsAWSConfigError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))

	var cfg config.Config
	cfg.Storage.Bucket = "inventory"
	cfg.Storage.Region = "us-east-1"
	cfg.AWS.Profile = "missing-profile"

	svc, err := buildStorage(context.Background(), cfg, quietLogger())
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "load aws config: ")
}
