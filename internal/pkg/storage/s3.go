package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Config carries the settings for an S3-compatible object store
// (AWS or MinIO behind a custom endpoint).
type S3Config struct {
	Region     string
	Bucket     string
	Endpoint   string // optional, for MinIO-compatible stores
	AccessKey  string
	SecretKey  string
	PublicBase string // optional public URL prefix; derived when empty
}

type S3Store struct {
	client *s3.Client
	cfg    S3Config
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, cfg: cfg}, nil
}

func (s *S3Store) Save(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, mimeType, err := openAndSniff(fileHeader)
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := objectKey(folder, extensionFor(fileHeader.Filename, mimeType))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(mimeType),
		ContentLength: aws.Int64(fileHeader.Size),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *S3Store) publicURL(key string) string {
	if s.cfg.PublicBase != "" {
		return strings.TrimSuffix(s.cfg.PublicBase, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		return strings.TrimSuffix(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func objectKey(folder, ext string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%d/%d/%s%s", folder, d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}
