package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/models"
)

func newS3SignerForTest() *S3Signer {
	return NewS3Signer(config.Media{
		S3Bucket:   "qr-media",
		S3Region:   "us-east-1",
		S3Endpoint: "http://127.0.0.1:9000",
	}, 15*time.Minute, logger.Nop())
}

func TestS3Signer_Sign_EmptyPath(t *testing.T) {
	s := newS3SignerForTest()

	resp, err := s.Sign(context.Background(), models.SignedURLRequest{})

	require.ErrorIs(t, err, ErrEmptyPath)
	assert.Nil(t, resp)
}

func TestS3Signer_Sign_BucketMismatch(t *testing.T) {
	s := newS3SignerForTest()

	resp, err := s.Sign(context.Background(), models.SignedURLRequest{
		Bucket: "someone-elses-bucket",
		Path:   "logos/acme.png",
	})

	require.ErrorIs(t, err, ErrBucketMismatch)
	assert.Nil(t, resp)
}

func TestS3Signer_Sign_ConfigLoadError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no credentials")
	}

	s := newS3SignerForTest()
	resp, err := s.Sign(context.Background(), models.SignedURLRequest{Path: "logos/acme.png"})

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestS3Signer_Sign_Success(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	// static credentials keep presigning fully offline
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{
			Region: "us-east-1",
			Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{AccessKeyID: "test", SecretAccessKey: "test"}, nil
			}),
		}, nil
	}

	s := newS3SignerForTest()
	resp, err := s.Sign(context.Background(), models.SignedURLRequest{Path: "logos/acme.png"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Contains(t, resp.URL, "logos/acme.png")
	assert.Contains(t, resp.URL, "X-Amz-Signature")
	assert.Equal(t, int64(900), resp.ExpiresIn)
}

func TestNewSigner_SelectsBackend(t *testing.T) {
	app := config.App{PublicBaseURL: "https://qr.example.com", URLSignKey: "k"}

	withBucket := NewSigner(app, config.Media{S3Bucket: "qr-media"}, logger.Nop())
	assert.IsType(t, &S3Signer{}, withBucket)

	withoutBucket := NewSigner(app, config.Media{LocalDir: t.TempDir()}, logger.Nop())
	assert.IsType(t, &LocalSigner{}, withoutBucket)
}
