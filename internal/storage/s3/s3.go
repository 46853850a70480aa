package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bouesti/journal-repository/internal/core/ports/storage"
	"github.com/bouesti/journal-repository/internal/platform/config"
)

// ArtifactStore stores journal PDFs in an S3-compatible bucket.
type ArtifactStore struct {
	client   *awss3.Client
	bucket   string
	endpoint string
}

var _ storage.ArtifactStore = (*ArtifactStore)(nil)

// NewArtifactStore builds an S3 client from the application configuration.
// A non-empty endpoint switches to path-style addressing for S3-compatible
// providers (MinIO, Strato, etc.).
func NewArtifactStore(ctx context.Context, cfg *config.Config) (*ArtifactStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 configuration: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &ArtifactStore{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimSuffix(cfg.S3Endpoint, "/"),
	}, nil
}

// StoreJournalPDF writes the stream under journals/<journalID>/<filename>
// and returns the key and a retrievable URL.
func (s *ArtifactStore) StoreJournalPDF(ctx context.Context, journalID string, filename string, body io.Reader) (string, string, error) {
	key := path.Join("journals", journalID, path.Base(filename))

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return key, s.objectURL(key), nil
}

// DeleteArtifact removes a stored object.
func (s *ArtifactStore) DeleteArtifact(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *ArtifactStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
