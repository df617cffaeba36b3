// Package storage uploads avatar files to an S3-compatible object store
// (MinIO in development) via presigned PUT URLs, so image bytes never
// pass through this service.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/spec-kit/booking-service/internal/config"
)

// AvatarStore issues presigned upload URLs and resolves public URLs for
// stored avatar objects.
type AvatarStore struct {
	cfg config.StorageConfig
}

// NewAvatarStore builds the store.
func NewAvatarStore(cfg config.StorageConfig) *AvatarStore {
	return &AvatarStore{cfg: cfg}
}

func (s *AvatarStore) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		o.UsePathStyle = true
	})
	return s3.NewPresignClient(client), nil
}

// PresignUpload returns the object key and a presigned PUT URL the
// client uploads the image to directly.
func (s *AvatarStore) PresignUpload(ctx context.Context, fileExt string) (key, uploadURL string, err error) {
	presignClient, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	key = ObjectKey(fileExt)
	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.PresignTTL()))
	if err != nil {
		return "", "", err
	}
	return key, req.URL, nil
}

// PublicURL resolves the stable public URL for a stored object key.
func (s *AvatarStore) PublicURL(key string) string {
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, s.cfg.Bucket, key)
}

// ObjectKey produces a date-partitioned random key; the extension is
// kept so the object serves with a sensible content type.
func ObjectKey(fileExt string) string {
	ext := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(fileExt)), ".")
	d := time.Now()
	key := fmt.Sprintf("avatars/%d/%d/%d/%s", d.Year(), d.Month(), d.Day(), uuid.NewString())
	if ext != "" {
		key += "." + ext
	}
	return key
}
