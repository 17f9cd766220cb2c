package storage

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage implements Storage with the AWS SDK. It works against AWS S3 or,
// with an endpoint set, any S3-compatible service using path-style addressing.
type S3Storage struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	publicBase string
}

// S3Options configures NewS3Storage. Empty credentials fall back to the
// default AWS credential chain.
type S3Options struct {
	Endpoint   string // host:port or URL; empty for AWS
	AccessKey  string
	SecretKey  string
	Region     string
	Bucket     string
	PublicBase string
	UseSSL     bool
}

// NewS3Storage loads AWS configuration and returns an S3Storage.
func NewS3Storage(ctx context.Context, opts S3Options) (*S3Storage, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if opts.Endpoint != "" {
		endpoint := endpointURL(opts.Endpoint, opts.UseSSL)
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return newS3Storage(s3.NewFromConfig(cfg, s3opts...), opts.Bucket, opts.PublicBase), nil
}

func newS3Storage(client *s3.Client, bucket, publicBase string) *S3Storage {
	return &S3Storage{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

// UploadFile uploads the file at path under key.
func (s *S3Storage) UploadFile(ctx context.Context, key, path, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put object %q: %w", key, err)
	}
	return nil
}

// PresignPut signs a PUT for key with Content-Type bound into the signature.
func (s *S3Storage) PresignPut(ctx context.Context, key string, expiry time.Duration, contentType string) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("s3 presign put %q: %w", key, err)
	}
	return req.URL, nil
}

// PublicURL returns the browser-accessible URL for the given key.
func (s *S3Storage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

// endpointURL adds a scheme to a bare host:port endpoint.
func endpointURL(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}
