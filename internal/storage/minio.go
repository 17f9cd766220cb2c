package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// MinioOptions configures NewMinioStorage.
type MinioOptions struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Region     string
	Bucket     string
	PublicBase string
	UseSSL     bool

	// PublicPolicy applies a public-read bucket policy. Leave it off for
	// endpoints that reject bucket policies, such as the GCS XML API.
	PublicPolicy bool
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists (with a
// public-read policy when requested), and returns a ready-to-use MinioStorage.
func NewMinioStorage(ctx context.Context, opts MinioOptions) (*MinioStorage, error) {
	s, err := newMinioStorage(opts)
	if err != nil {
		return nil, err
	}

	exists, err := s.client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", opts.Bucket, err)
		}
		log.WithField("bucket", opts.Bucket).Info("storage: created bucket")
	}

	// Item images are served by their public URL.
	if opts.PublicPolicy {
		if err := s.client.SetBucketPolicy(ctx, opts.Bucket, publicReadPolicy(opts.Bucket)); err != nil {
			return nil, fmt.Errorf("set bucket policy: %w", err)
		}
	}

	return s, nil
}

// newMinioStorage builds the client without touching the network.
// A fixed region keeps presigning offline.
func newMinioStorage(opts MinioOptions) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinioStorage{
		client:     client,
		bucket:     opts.Bucket,
		publicBase: strings.TrimRight(opts.PublicBase, "/"),
	}, nil
}

// UploadFile streams the file at path to MinIO under key.
func (s *MinioStorage) UploadFile(ctx context.Context, key, path, contentType string) error {
	_, err := s.client.FPutObject(ctx, s.bucket, key, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// PresignPut signs a PUT for key with Content-Type bound into the signature.
func (s *MinioStorage) PresignPut(ctx context.Context, key string, expiry time.Duration, contentType string) (string, error) {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, expiry, nil, header)
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}
	return u.String(), nil
}

// PublicURL returns the browser-accessible URL for the given key,
// e.g. "https://storage.cloud.google.com/bottle-template/item-1.jpg".
func (s *MinioStorage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
