package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MKhiriev/adhdiary/internal/config"
	"github.com/MKhiriev/adhdiary/internal/logger"
)

const imageContentType = "image/jpeg"

// objectPutter is the subset of *s3.Client used by [s3ImageStorage].
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3ImageStorage uploads images to an S3-compatible bucket.
type s3ImageStorage struct {
	client    objectPutter
	bucket    string
	publicURL string
	now       func() time.Time
	logger    *logger.Logger
}

// NewS3ImageStorage builds an S3 client from cfg. Static credentials are used
// when an access key is configured; otherwise the default AWS credential
// chain applies. A custom endpoint switches to path-style addressing, which
// MinIO and most S3-compatible stores expect.
func NewS3ImageStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (ImageStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3ImageStorage").Msg("failed to load aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 image storage")
	return newS3ImageStorage(client, cfg, logger), nil
}

func newS3ImageStorage(client objectPutter, cfg config.S3, logger *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg),
		now:       time.Now,
		logger:    logger,
	}
}

// SaveImage uploads image under a date-partitioned random key and returns the
// object's public URL.
func (s *s3ImageStorage) SaveImage(ctx context.Context, image io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	body, err := seekable(image)
	if err != nil {
		log.Err(err).Str("func", "s3ImageStorage.SaveImage").Msg("failed to read image")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	key := s.objectKey()
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(imageContentType),
	})
	if err != nil {
		log.Err(err).
			Str("func", "s3ImageStorage.SaveImage").
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to upload image")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	log.Debug().Str("bucket", s.bucket).Str("key", key).Msg("image uploaded")
	return s.publicURL + "/" + key, nil
}

func (s *s3ImageStorage) objectKey() string {
	d := s.now().UTC()
	return fmt.Sprintf("uploads/%04d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), imageExtension)
}

// publicBaseURL falls back to the endpoint/bucket form when no public URL is
// configured.
func publicBaseURL(cfg config.S3) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// seekable returns r itself when it can be rewound and a buffered copy
// otherwise; request signing needs to read the body twice.
func seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
