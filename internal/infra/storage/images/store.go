package images

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Options параметры S3-совместимого хранилища
type Options struct {
	Endpoint      string // пусто - AWS S3
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// Store хранилище изображений услуг
type Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewStore создает клиента S3-совместимого хранилища (S3, R2, MinIO)
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" || opts.PublicBaseURL == "" {
		return nil, fmt.Errorf("%w: bucket and public base url are required", ErrConfig)
	}

	region := opts.Region
	if region == "" {
		region = "auto"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %v", ErrConfig, err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
	}, nil
}

// Upload сохраняет изображение и возвращает его публичный URL
func (s *Store) Upload(ctx context.Context, serviceID int64, filename, contentType string, body io.Reader) (string, error) {
	key := ObjectKey(serviceID, filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("%w: put %s: %v", ErrUpload, key, err)
	}

	return s.baseURL + "/" + key, nil
}

// ObjectKey ключ объекта: services/<id>/<uuid><ext>
func ObjectKey(serviceID int64, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("services/%d/%s%s", serviceID, uuid.NewString(), ext)
}
