package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Storage = (*MinioStorage)(nil)
	_ Storage = (*S3Storage)(nil)
)

func assertSignedPut(t *testing.T, raw, object string, expiry time.Duration) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Contains(t, u.Path, "/bottle-template/"+object)
	assert.Equal(t, "AWS4-HMAC-SHA256", q.Get("X-Amz-Algorithm"))
	assert.Equal(t, strconv.Itoa(int(expiry.Seconds())), q.Get("X-Amz-Expires"))
	assert.Contains(t, q.Get("X-Amz-SignedHeaders"), "content-type")
	assert.NotEmpty(t, q.Get("X-Amz-Signature"))
}

func TestMinioPresignPut(t *testing.T) {
	s, err := newMinioStorage(MinioOptions{
		Endpoint:   "localhost:9000",
		AccessKey:  "minioadmin",
		SecretKey:  "minioadmin",
		Region:     "us-east-1",
		Bucket:     "bottle-template",
		PublicBase: "https://storage.cloud.google.com/bottle-template/",
	})
	require.NoError(t, err)

	raw, err := s.PresignPut(context.Background(), "video.mp4", 5*time.Minute, "video/mp4")
	require.NoError(t, err)

	assertSignedPut(t, raw, "video.mp4", 5*time.Minute)
	assert.Equal(t, "https://storage.cloud.google.com/bottle-template/item-3.jpg", s.PublicURL("item-3.jpg"))
}

func TestS3PresignPut(t *testing.T) {
	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider("AKID", "SECRET", "")),
		BaseEndpoint: aws.String("http://localhost:9000"),
		UsePathStyle: true,
	})
	s := newS3Storage(client, "bottle-template", "https://cdn.example.com")

	raw, err := s.PresignPut(context.Background(), "video.mp4", 5*time.Minute, "video/mp4")
	require.NoError(t, err)

	assertSignedPut(t, raw, "video.mp4", 5*time.Minute)
	assert.Equal(t, "https://cdn.example.com/item-1.jpg", s.PublicURL("item-1.jpg"))
}

func TestPublicReadPolicy(t *testing.T) {
	var policy struct {
		Statement []struct {
			Effect   string
			Action   string
			Resource string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(publicReadPolicy("bottle-template")), &policy))
	require.Len(t, policy.Statement, 1)
	assert.Equal(t, "Allow", policy.Statement[0].Effect)
	assert.Equal(t, "s3:GetObject", policy.Statement[0].Action)
	assert.Equal(t, "arn:aws:s3:::bottle-template/*", policy.Statement[0].Resource)
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000", endpointURL("localhost:9000", false))
	assert.Equal(t, "https://s3.example.com", endpointURL("s3.example.com", true))
	assert.Equal(t, "http://minio:9000", endpointURL("http://minio:9000", true))
}

// bucketServer reports every bucket as existing and counts policy writes.
type bucketServer struct {
	mu       sync.Mutex
	policies int
}

func (b *bucketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPut && r.URL.Query().Has("policy") {
		b.mu.Lock()
		b.policies++
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (b *bucketServer) policyRequests() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.policies
}

func TestNewMinioStorageBucketPolicy(t *testing.T) {
	for _, apply := range []bool{true, false} {
		bs := &bucketServer{}
		srv := httptest.NewServer(bs)

		_, err := NewMinioStorage(context.Background(), MinioOptions{
			Endpoint:     srv.Listener.Addr().String(),
			AccessKey:    "minioadmin",
			SecretKey:    "minioadmin",
			Region:       "us-east-1",
			Bucket:       "bottle-template",
			PublicBase:   "https://storage.cloud.google.com/bottle-template",
			PublicPolicy: apply,
		})
		srv.Close()

		require.NoError(t, err, "policy=%t", apply)
		if apply {
			assert.Equal(t, 1, bs.policyRequests())
		} else {
			assert.Zero(t, bs.policyRequests())
		}
	}
}
