// File: /services/storage_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"wanderspot-api/config"
)

// StorageService stores post media in an S3-compatible object store.
// Objects live under a per-user prefix with a timestamp-based filename
// and are served from a public base URL.
type StorageService struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &StorageService{
		client:  client,
		bucket:  cfg.MinioBucket,
		baseURL: strings.TrimSuffix(cfg.MediaBaseURL, "/"),
	}, nil
}

// EnsureBucket creates the media bucket when it does not exist yet
func (s *StorageService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Upload stores an object under <userID>/<timestamp>-<filename> and
// returns its public URL.
func (s *StorageService) Upload(ctx context.Context, userID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("%s/%d-%s", userID, time.Now().UnixMilli(), sanitizeFilename(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}

	return s.baseURL + "/" + objectName, nil
}

// Remove deletes an object by its path within the bucket
func (s *StorageService) Remove(ctx context.Context, objectPath string) error {
	if objectPath == "" {
		return nil
	}
	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove media: %w", err)
	}
	return nil
}

// ObjectPathFromURL extracts the in-bucket object path from a public media
// URL. Returns "" when the URL is not under the public base URL.
func (s *StorageService) ObjectPathFromURL(mediaURL string) string {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(mediaURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(mediaURL, prefix)
}

func sanitizeFilename(filename string) string {
	filename = path.Base(filename)
	filename = strings.ReplaceAll(filename, " ", "_")
	return filename
}
