package media

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/models"
)

// Seams for tests. Production code always uses the real AWS SDK entry points.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
)

// S3Signer presigns GET URLs for objects stored in a single configured
// bucket. Credentials come from static config keys when set, otherwise from
// the default AWS credential chain.
type S3Signer struct {
	cfg config.Media
	ttl time.Duration
	log *logger.Logger
}

// NewS3Signer returns a [Signer] backed by S3 presigned URLs.
func NewS3Signer(cfg config.Media, ttl time.Duration, log *logger.Logger) *S3Signer {
	return &S3Signer{cfg: cfg, ttl: ttl, log: log}
}

func (s *S3Signer) Sign(ctx context.Context, req models.SignedURLRequest) (*models.SignedURLResponse, error) {
	if req.Path == "" {
		return nil, ErrEmptyPath
	}
	if req.Bucket != "" && req.Bucket != s.cfg.S3Bucket {
		return nil, ErrBucketMismatch
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating presign client: %w", err)
	}

	presigned, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(req.Path),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("error presigning media url: %w", err)
	}

	return &models.SignedURLResponse{
		URL:       presigned.URL,
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}

func (s *S3Signer) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(s.cfg.S3Region),
	}
	if s.cfg.S3AccessKey != "" && s.cfg.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.cfg.S3AccessKey, s.cfg.S3SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.S3Endpoint)
		}
	})

	return newS3PresignClient(client), nil
}
