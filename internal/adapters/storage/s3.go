// internal/adapters/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// DefaultKeyPrefix is where uploaded images land in the bucket
const DefaultKeyPrefix = "uploads/images"

// ObjectUploader is the part of manager.Uploader the store needs
type ObjectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// BucketHeader checks that a bucket is reachable
type BucketHeader interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Config holds S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // For MinIO/LocalStack
	UsePathStyle    bool   // For MinIO/LocalStack
	// PublicBaseURL replaces the S3 location in returned URLs, e.g. a CDN
	PublicBaseURL string
	KeyPrefix     string
}

// S3ImageStore uploads product images straight to S3 instead of through
// the backend uploads endpoint.
type S3ImageStore struct {
	uploader  ObjectUploader
	bucket    BucketHeader
	name      string
	baseURL   string
	keyPrefix string
	now       func() time.Time
	logger    *slog.Logger
}

var _ ports.ImageUploader = (*S3ImageStore)(nil)

// NewS3ImageStore creates a store backed by a real S3 client
func NewS3ImageStore(ctx context.Context, cfg *S3Config, logger *slog.Logger) (*S3ImageStore, error) {
	awsCfg, err := buildAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	store := NewS3ImageStoreWith(manager.NewUploader(client), client, cfg, logger)

	logger.Info("S3 image store initialized",
		slog.String("bucket", cfg.Bucket),
		slog.String("region", cfg.Region))

	return store, nil
}

// NewS3ImageStoreWith creates a store over the given uploader and bucket client
func NewS3ImageStoreWith(uploader ObjectUploader, bucket BucketHeader, cfg *S3Config, logger *slog.Logger) *S3ImageStore {
	prefix := strings.Trim(cfg.KeyPrefix, "/")
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &S3ImageStore{
		uploader:  uploader,
		bucket:    bucket,
		name:      cfg.Bucket,
		baseURL:   strings.TrimRight(cfg.PublicBaseURL, "/"),
		keyPrefix: prefix,
		now:       time.Now,
		logger:    logger.With(slog.String("storage", "s3")),
	}
}

// buildAWSConfig uses static keys when both are set and the default
// credential chain otherwise.
func buildAWSConfig(ctx context.Context, cfg *S3Config) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// UploadImage stores one image under a fresh key
func (s *S3ImageStore) UploadImage(ctx context.Context, file domain.UploadFile) (*domain.UploadedImage, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(file.Name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	id := uuid.New().String()
	key := s.objectKey(id, file.Name, contentType)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.name),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"uploaded-at":   s.now().UTC().Format(time.RFC3339),
			"upload-id":     id,
			"original-name": file.Name,
		},
	}

	result, err := s.uploader.Upload(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image %s: %w", file.Name, err)
	}

	location := result.Location
	if s.baseURL != "" {
		location = s.baseURL + "/" + escapeKey(key)
	}

	s.logger.InfoContext(ctx, "image uploaded",
		slog.String("key", key),
		slog.String("location", location),
		slog.Int("size", len(file.Data)))

	return &domain.UploadedImage{
		ID:  domain.FlexString(id),
		URL: domain.FlexString(location),
		Key: domain.FlexString(key),
	}, nil
}

// objectKey is <prefix>/<yyyy>/<mm>/<id><ext>
func (s *S3ImageStore) objectKey(id, name, contentType string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	now := s.now().UTC()
	return path.Join(s.keyPrefix, now.Format("2006"), now.Format("01"), id+ext)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Ping checks the bucket is reachable
func (s *S3ImageStore) Ping(ctx context.Context) error {
	if _, err := s.bucket.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.name)}); err != nil {
		return fmt.Errorf("bucket %s unreachable: %w", s.name, err)
	}
	return nil
}
