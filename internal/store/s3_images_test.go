package store

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/adhdiary/internal/config"
	"github.com/MKhiriev/adhdiary/internal/logger"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if in.Body != nil {
		data, _ := io.ReadAll(in.Body)
		f.body = string(data)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newTestS3Storage(putter objectPutter, cfg config.S3) *s3ImageStorage {
	s := newS3ImageStorage(putter, cfg, logger.Nop())
	s.now = func() time.Time { return time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestS3ImageStorage_SaveImage(t *testing.T) {
	putter := &fakePutter{}
	storage := newTestS3Storage(putter, config.S3{Bucket: "diary", PublicURL: "https://cdn.example.com/"})

	url, err := storage.SaveImage(testContext(), strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	require.NotNil(t, putter.input)
	assert.Equal(t, "diary", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(putter.input.ContentType))
	assert.Equal(t, "jpeg bytes", putter.body)

	key := aws.ToString(putter.input.Key)
	assert.Regexp(t, regexp.MustCompile(`^uploads/2024/03/07/[0-9a-f-]{36}\.jpg$`), key)
	assert.Equal(t, "https://cdn.example.com/"+key, url)
}

func TestS3ImageStorage_UploadError(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	storage := newTestS3Storage(putter, config.S3{Bucket: "diary"})

	_, err := storage.SaveImage(testContext(), strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrSavingImage)
}

func TestS3ImageStorage_ReadError(t *testing.T) {
	putter := &fakePutter{}
	storage := newTestS3Storage(putter, config.S3{Bucket: "diary"})

	_, err := storage.SaveImage(testContext(), failingReader{})
	assert.ErrorIs(t, err, ErrSavingImage)
	assert.Nil(t, putter.input)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3
		want string
	}{
		{
			name: "explicit public url",
			cfg:  config.S3{Bucket: "diary", PublicURL: "https://img.example.com/"},
			want: "https://img.example.com",
		},
		{
			name: "custom endpoint",
			cfg:  config.S3{Bucket: "diary", Endpoint: "http://127.0.0.1:9000/"},
			want: "http://127.0.0.1:9000/diary",
		},
		{
			name: "aws virtual host",
			cfg:  config.S3{Bucket: "diary", Region: "eu-central-1"},
			want: "https://diary.s3.eu-central-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}

func TestNewS3ImageStorage_StaticCredentials(t *testing.T) {
	storage, err := NewS3ImageStorage(context.Background(), config.S3{
		Bucket:    "diary",
		Region:    "us-east-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	}, logger.Nop())
	require.NoError(t, err)
	require.IsType(t, &s3ImageStorage{}, storage)
	assert.Equal(t, "http://127.0.0.1:9000/diary", storage.(*s3ImageStorage).publicURL)
}
