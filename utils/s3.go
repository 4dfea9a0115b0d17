package utils

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3-compatible object storage for product and news images. Works against
// AWS S3 or any compatible endpoint (R2, MinIO) via S3_ENDPOINT.

func storageConfig() (aws.Config, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY_ID")
	secretKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}

	if accessKey == "" || secretKey == "" {
		return aws.Config{}, fmt.Errorf("S3_ACCESS_KEY_ID or S3_SECRET_ACCESS_KEY is not set")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load storage config: %w", err)
	}

	return cfg, nil
}

func storageClient() (*s3.Client, error) {
	cfg, err := storageConfig()
	if err != nil {
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return client, nil
}

func storageBucket() (string, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return "", fmt.Errorf("S3_BUCKET is not set")
	}
	return bucket, nil
}

// UploadObject stores the object under key and returns nil on success.
func UploadObject(key string, body io.Reader, size int64) error {
	bucket, err := storageBucket()
	if err != nil {
		return err
	}
	client, err := storageClient()
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// DeleteObject removes a stored object; missing keys are not an error.
func DeleteObject(key string) error {
	bucket, err := storageBucket()
	if err != nil {
		return err
	}
	client, err := storageClient()
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// PublicURL builds the externally reachable URL for a stored object.
func PublicURL(key string) string {
	if base := os.Getenv("S3_PUBLIC_BASE_URL"); base != "" {
		return fmt.Sprintf("%s/%s", base, key)
	}
	bucket, _ := storageBucket()
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}
