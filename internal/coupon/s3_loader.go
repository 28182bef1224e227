package coupon

import (
	"compress/gzip"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used to fetch coupon objects.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for reading gzipped coupon tables from AWS S3.
type s3Loader struct {
	client ObjectGetter
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates an S3-based coupon loader using the default AWS
// credential chain for region.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 coupon loader initialised")

	return NewS3LoaderWithClient(s3.NewFromConfig(cfg), bucket, logger), nil
}

// NewS3LoaderWithClient creates an S3-based coupon loader around an existing client.
func NewS3LoaderWithClient(client ObjectGetter, bucket string, logger zerolog.Logger) Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger.With().Str("component", "s3-coupon-loader").Str("bucket", bucket).Logger(),
	}
}

// Load fetches the object stored under key and parses it as a coupon table.
func (l *s3Loader) Load(ctx context.Context, key string) (Table, error) {
	log := l.logger.With().Str("key", key).Logger()
	log.Info().Msg("loading coupon table from S3")

	obj, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer obj.Body.Close()

	gzipReader, err := gzip.NewReader(obj.Body)
	if err != nil {
		log.Error().Err(err).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for S3 object %s: %w", key, err)
	}
	defer gzipReader.Close()

	table, err := readTable(ctx, gzipReader)
	if err != nil {
		log.Error().Err(err).Msg("error reading coupon table from S3")
		return nil, fmt.Errorf("error reading coupon table from S3 %s: %w", key, err)
	}

	log.Info().Int("coupons_loaded", table.Size()).Msg("coupon table loaded from S3")

	return table, nil
}

// fallbackLoader tries S3 first, then the local file system.
type fallbackLoader struct {
	remote   Loader
	local    Loader
	s3Prefix string
	logger   zerolog.Logger
}

// NewFallbackLoader creates a loader that tries remote (with s3Prefix
// prepended to the source) and falls back to local with the source as-is.
// A nil remote means local only.
func NewFallbackLoader(remote, local Loader, s3Prefix string, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		remote:   remote,
		local:    local,
		s3Prefix: s3Prefix,
		logger:   logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts the remote source first, then the local file.
func (l *fallbackLoader) Load(ctx context.Context, source string) (Table, error) {
	if l.remote != nil {
		key := l.s3Prefix + source

		table, err := l.remote.Load(ctx, key)
		if err == nil {
			return table, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", key).
			Str("local_fallback", source).
			Msg("failed to load from S3, falling back to local file system")
	}

	return l.local.Load(ctx, source)
}
