package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider is an S3-compatible storage vendor
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

// ErrNotConfigured is returned when no bucket is set
var ErrNotConfigured = errors.New("storage: bucket not configured")

// wasabiEndpoints maps regions to Wasabi endpoints
var wasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
}

// Config holds S3-compatible storage settings
type Config struct {
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string // overrides the provider default
	Prefix          string // key prefix, e.g. "exports"
}

// endpoint returns the custom base endpoint, or "" for the AWS default
func (c Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.Provider == ProviderWasabi {
		if e, ok := wasabiEndpoints[c.Region]; ok {
			return "https://" + e
		}
		return "https://s3.ap-southeast-1.wasabisys.com"
	}
	return ""
}

// ObjectAPI is the subset of *s3.Client the archive uses
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// NewS3Client creates an S3 client for AWS or Wasabi
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load AWS config: %w", err)
	}

	endpoint := cfg.endpoint()
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Wasabi and most S3 clones require path-style
		}
	}), nil
}

// ExportArchive stores copies of talent exports for audit
type ExportArchive struct {
	client ObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

func NewExportArchive(client ObjectAPI, bucket, prefix string) *ExportArchive {
	return &ExportArchive{client: client, bucket: bucket, prefix: prefix, now: time.Now}
}

// Key returns the object key for an export: <prefix>/YYYY/MM/DD/<requester>/<filename>
func (a *ExportArchive) Key(requester, filename string) string {
	if requester == "" {
		requester = "anonymous"
	}
	return path.Join(a.prefix, a.now().UTC().Format("2006/01/02"), requester, filename)
}

// Archive uploads one export file and returns its key
func (a *ExportArchive) Archive(ctx context.Context, requester, filename, contentType string, data []byte) (string, error) {
	key := a.Key(requester, filename)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return key, nil
}

// Ping checks that the bucket is reachable
func (a *ExportArchive) Ping(ctx context.Context) error {
	_, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(a.bucket)})
	return err
}
