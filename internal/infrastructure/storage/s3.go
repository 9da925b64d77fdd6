// Package storage implements the product picture store on S3-compatible
// object storage (AWS S3 or MinIO via the BaseEndpoint override).
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config captures the object storage settings.
type Config struct {
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string // optional, for S3-compatible stores
	URLBase      string // public URL prefix, e.g. https://s3.amazonaws.com/
}

// PictureStore uploads product pictures to an S3 bucket.
type PictureStore struct {
	client *s3.Client
	cfg    Config
}

// New builds the S3 client from static credentials.
func New(ctx context.Context, cfg Config) (*PictureStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &PictureStore{client: client, cfg: cfg}, nil
}

// Upload stores content under key and returns the stored path.
func (s *PictureStore) Upload(ctx context.Context, key string, content []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}
	return key, nil
}

// PublicURL derives the client-facing URL for a stored path.
func (s *PictureStore) PublicURL(storedPath string) string {
	return s.cfg.URLBase + s.cfg.Bucket + "/" + storedPath
}
