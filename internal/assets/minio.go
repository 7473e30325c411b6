// Package assets serves static site media (the doctor's photo) out of MinIO.
package assets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/doctorprofile/profile-api/internal/config"
)

// ErrNotFound is returned when the requested object does not exist in the bucket.
var ErrNotFound = errors.New("asset not found")

// MinIOStorage hands out short-lived links to objects in one bucket.
type MinIOStorage struct {
	client  *minio.Client
	bucket  string
	expires time.Duration
}

// NewMinIOStorage connects to the configured endpoint and checks the bucket exists.
func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig) (*MinIOStorage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ok, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("minio bucket %q does not exist", cfg.Bucket)
	}
	expires := cfg.LinkTTL
	if expires <= 0 {
		expires = 15 * time.Minute
	}
	return &MinIOStorage{client: mc, bucket: cfg.Bucket, expires: expires}, nil
}

// PresignedURL returns a GET link for key. Missing objects yield ErrNotFound.
func (s *MinIOStorage) PresignedURL(ctx context.Context, key string) (string, error) {
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("minio stat %s: %w", key, err)
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expires, make(url.Values))
	if err != nil {
		return "", fmt.Errorf("minio presign %s: %w", key, err)
	}
	return u.String(), nil
}
