// Package storage uploads exported documents to an S3-compatible bucket so
// issued itineraries stay retrievable after the fact.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"tripdesk/internal/config"
)

type Archive struct {
	client *s3.Client
	bucket string
}

// NewArchive builds the document archive client. Returns nil when no archive
// is configured, callers treat a nil archive as "skip upload".
func NewArchive(cfg *config.Config) *Archive {
	if !cfg.ArchiveEnabled() {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Archive.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey, cfg.Archive.SecretKey, "")),
	)
	if err != nil {
		log.Printf("[Archive] Failed to load credentials, archive disabled: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Archive.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Archive{client: client, bucket: cfg.Archive.Bucket}
}

// Upload stores a rendered document and returns the object key.
func (a *Archive) Upload(ctx context.Context, key string, data []byte) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
