package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jaytlin4/Data-Visualizer/internal/infra/config"
	logging "github.com/jaytlin4/Data-Visualizer/internal/infra/log"
)

// maxListKeys bounds a listing to a single result page. Buckets larger
// than one page are truncated; continuation tokens are a known limitation.
const maxListKeys = 1000

// Client wraps an S3-compatible object store with rate limiting and a
// circuit breaker, mirroring the hygiene applied to every remote client
// in this codebase.
type Client struct {
	s3             *minio.Client
	rateLimiter    *rate.Limiter
	circuitBreaker *gobreaker.CircuitBreaker
	requestTimeout time.Duration
}

// NewClient builds a storage client from the storage section of the config.
// Credentials are handed to the underlying client as-is.
func NewClient(cfg config.StorageConfig) (*Client, error) {
	s3, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, &Error{Op: "connect", Bucket: cfg.Bucket, Err: err}
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ObjectStorage",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Client{
		s3:             s3,
		rateLimiter:    rate.NewLimiter(rate.Limit(10), 20),
		circuitBreaker: circuitBreaker,
		requestTimeout: timeout,
	}, nil
}

// ListObjects returns the object keys present in bucket, in listing order.
// Only the first page of results is considered complete.
func (c *Client) ListObjects(ctx context.Context, bucket string) ([]string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, &Error{Op: "list", Bucket: bucket, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		keys := make([]string, 0)
		for obj := range c.s3.ListObjects(ctx, bucket, minio.ListObjectsOptions{
			Recursive: true,
			MaxKeys:   maxListKeys,
		}) {
			if obj.Err != nil {
				return nil, obj.Err
			}
			keys = append(keys, obj.Key)
			if len(keys) >= maxListKeys {
				break
			}
		}
		return keys, nil
	})
	if err != nil {
		return nil, &Error{Op: "list", Bucket: bucket, Err: err}
	}

	keys := result.([]string)
	logging.LogInfo("Listed bucket objects",
		zap.String("bucket", bucket),
		zap.Int("count", len(keys)))
	return keys, nil
}

// Download fetches bucket/key into destDir/basename(key) and returns the
// local path. The destination directory is created if missing. The caller
// owns the fail-fast policy for download errors.
func (c *Client) Download(ctx context.Context, bucket, key, destDir string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", &Error{Op: "download", Bucket: bucket, Key: key, Err: err}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", &Error{Op: "download", Bucket: bucket, Key: key, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	localPath := filepath.Join(destDir, filepath.Base(key))

	_, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, c.s3.FGetObject(ctx, bucket, key, localPath, minio.GetObjectOptions{})
	})
	if err != nil {
		return "", &Error{Op: "download", Bucket: bucket, Key: key, Err: err}
	}

	logging.LogSuccess("File downloaded",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.String("path", localPath))
	return localPath, nil
}

// Error describes a failed object store operation.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s %q: %v", e.Op, e.Bucket, e.Err)
	}
	return fmt.Sprintf("storage %s %q/%q: %v", e.Op, e.Bucket, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
