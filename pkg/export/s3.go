package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of the S3 client used by the S3 exporter.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads files to an S3 bucket.
//
// Example usage:
//
//	client, err := export.NewS3Client(ctx, "eu-west-1")
//	if err != nil {
//		return err
//	}
//	exp := export.NewS3(client, "my-site", "public/")
type S3 struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3 creates an S3 exporter writing below prefix in bucket.
func NewS3(client PutObjectAPI, bucket, prefix string) *S3 {
	return &S3{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func (s *S3) WithCacheControl(value string) *S3 {
	s.cacheControl = value
	return s
}

// Key returns the object key for an exported path.
func (s *S3) Key(p string) string {
	return path.Join(s.prefix, strings.TrimLeft(p, "/"))
}

// Export uploads data as one object.
func (s *S3) Export(ctx context.Context, p string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.Key(p)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ContentType(p)),
	}
	if s.cacheControl != "" {
		input.CacheControl = aws.String(s.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("%w: s3 %s: %w", ErrUploadFailed, p, err)
	}
	return nil
}

// NewS3Client builds an S3 client for region from the default AWS
// configuration chain: environment, shared config and credentials files,
// SSO and instance or task roles. An empty region falls back to the one
// the chain resolves. AWS_ENDPOINT_URL, when set, points the client at an
// S3 compatible store with path-style addressing.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := os.Getenv("AWS_ENDPOINT_URL")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
