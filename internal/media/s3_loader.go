package media

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectGetter is the part of the S3 API the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Loader struct {
	client ObjectGetter
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a loader reading images from an S3 bucket using the default AWS
// credential chain.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "media-s3-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 media loader initialised")

	return NewS3LoaderWithClient(s3.NewFromConfig(cfg), bucket, logger), nil
}

// NewS3LoaderWithClient creates an S3 loader over an existing client.
func NewS3LoaderWithClient(client ObjectGetter, bucket string, logger zerolog.Logger) Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (l *s3Loader) Load(ctx context.Context, key string) (*Image, error) {
	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	return Read(key, result.Body)
}

type fallbackLoader struct {
	primary  Loader
	local    Loader
	s3Prefix string
	logger   zerolog.Logger
}

// NewFallbackLoader tries primary with s3Prefix prepended to the reference, then local with
// the reference as given. A nil primary means local only.
func NewFallbackLoader(primary, local Loader, s3Prefix string, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		primary:  primary,
		local:    local,
		s3Prefix: s3Prefix,
		logger:   logger.With().Str("component", "media-fallback-loader").Logger(),
	}
}

func (l *fallbackLoader) Load(ctx context.Context, ref string) (*Image, error) {
	if l.primary != nil {
		key := l.s3Prefix + ref
		img, err := l.primary.Load(ctx, key)
		if err == nil {
			return img, nil
		}
		l.logger.Warn().
			Err(err).
			Str("s3_key", key).
			Msg("failed to load image from S3, falling back to local media directory")
	}

	return l.local.Load(ctx, ref)
}
