package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type r2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

type R2Config struct {
	AccountID       string `json:"account_id"`
	AccessKeyID     string `json:"access_key_id"`
	AccessKeySecret string `json:"access_key_secret"`
	BucketName      string `json:"bucket_name"`
	Endpoint        string `json:"endpoint"`
	PublicURL       string `json:"public_url"`
}

func R2ConfigFromEnv() *R2Config {
	return &R2Config{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		Endpoint:        os.Getenv("R2_ENDPOINT"),
		PublicURL:       os.Getenv("R2_PUBLIC_URL"),
	}
}

func (c *R2Config) Validate() error {
	if c.AccountID == "" || c.AccessKeyID == "" || c.AccessKeySecret == "" || c.BucketName == "" || c.Endpoint == "" {
		return fmt.Errorf("missing required R2 configuration")
	}
	return nil
}

func NewR2Storage(config R2Config) (Storage, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion("auto"),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.AccessKeySecret, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.Endpoint)
		o.UsePathStyle = true
	})

	publicURL := config.PublicURL
	if publicURL == "" {
		publicURL = strings.TrimSuffix(config.Endpoint, "/") + "/" + config.BucketName
	}

	return &r2Storage{
		client:    client,
		bucket:    config.BucketName,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (c *r2Storage) Upload(ctx context.Context, objectKey string, body io.Reader, contentType string) (string, error) {
	if objectKey == "" {
		return "", fmt.Errorf("object key cannot be empty")
	}

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return c.publicURL + "/" + objectKey, nil
}

func (c *r2Storage) Delete(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

func (c *r2Storage) ObjectKey(publicURL string) (string, bool) {
	return trimBaseURL(c.publicURL, publicURL)
}

func trimBaseURL(base, url string) (string, bool) {
	prefix := base + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
