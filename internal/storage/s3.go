package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lotusspa/salon-scheduler/internal/config"
)

// MediaStore uploads salon media to an S3-compatible bucket.
type MediaStore struct {
	client *s3.Client
	bucket string
	base   string
}

func NewMediaStore(cfg *config.Config) *MediaStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	base := cfg.MediaBase
	if base == "" {
		base = fmt.Sprintf("%s/%s", cfg.S3Endpoint, cfg.S3Bucket)
	}

	return &MediaStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
		base:   base,
	}
}

// PutImage stores webp bytes under a fresh uuid key inside the salon's
// prefix and returns (publicURL, objectKey).
func (m *MediaStore) PutImage(ctx context.Context, salonID uint, payload []byte) (string, string, error) {
	key := fmt.Sprintf("salons/%d/%s.webp", salonID, uuid.NewString())

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", err
	}

	return fmt.Sprintf("%s/%s", m.base, key), key, nil
}

func (m *MediaStore) Delete(ctx context.Context, key string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	return err
}
