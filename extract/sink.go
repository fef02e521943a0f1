package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Sink stores extracted files. Paths are slash-separated and relative to the
// sink root.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
	// Location returns where name ends up, for reporting.
	Location(name string) string
}

// FileSink writes under a local directory.
type FileSink struct {
	Root string
}

// NewFileSink creates a FileSink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Root: dir}
}

func (s *FileSink) Write(_ context.Context, name string, data []byte) error {
	target := s.Location(name)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

func (s *FileSink) Location(name string) string {
	return filepath.Join(s.Root, filepath.FromSlash(name))
}

// s3PutAPI is the subset of S3 operations needed by S3Sink.
type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads each file as an object under Prefix in Bucket.
type S3Sink struct {
	client s3PutAPI
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3Sink creates an S3Sink using the default AWS credential chain.
func NewS3Sink(ctx context.Context, bucket, prefix string, logger *slog.Logger) (*S3Sink, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newS3Sink(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

func newS3Sink(client s3PutAPI, bucket, prefix string, logger *slog.Logger) *S3Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger.With("component", "s3-sink"),
	}
}

func (s *S3Sink) Write(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return fmt.Errorf("failed to write s3://%s/%s: %w", s.bucket, key, err)
	}
	s.logger.Debug("wrote object", "bucket", s.bucket, "key", key, "bytes", len(data))
	return nil
}

func (s *S3Sink) Location(name string) string {
	return "s3://" + s.bucket + "/" + s.key(name)
}

func (s *S3Sink) key(name string) string {
	return path.Join(s.prefix, name)
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	default:
		return "text/plain; charset=utf-8"
	}
}
