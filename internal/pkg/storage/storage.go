// Package storage uploads news images and avatars to an S3-compatible
// bucket and hands back the public URL the models persist.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/vestniklab/Vestnik/internal/pkg/env"
)

// Images wider than this are downscaled before upload.
const maxImageWidth = 1920

// Config holds the bucket connection settings read from the environment.
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	PublicBaseURL   string
}

// ConfigFromEnv reads the storage configuration from the environment.
func ConfigFromEnv() *Config {
	return &Config{
		Region:          env.GetEnv("STORAGE_REGION", "us-east-1"),
		Bucket:          env.GetEnv("STORAGE_BUCKET", "vestnik-media"),
		AccessKeyID:     env.GetEnv("STORAGE_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("STORAGE_SECRET_ACCESS_KEY", ""),
		EndpointURL:     env.GetEnv("STORAGE_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("STORAGE_PUBLIC_URL", ""),
	}
}

// Client wraps the S3 client with upload and public-URL helpers.
type Client struct {
	s3Client *s3.Client
	config   *Config
}

var client *Client

// Setup initializes the global storage client from the environment.
func Setup() error {
	cfg := ConfigFromEnv()

	awsConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		}
	})

	client = &Client{s3Client: s3Client, config: cfg}
	return nil
}

// GetClient returns the global storage client, or nil when Setup was not run.
func GetClient() *Client {
	return client
}

// UploadImage stores an uploaded image under a random name and returns its
// public URL. Oversized images are downscaled and re-encoded as JPEG;
// anything imaging cannot decode is stored as received.
func (c *Client) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	var body bytes.Buffer
	img, err := imaging.Decode(file)
	if err == nil {
		if img.Bounds().Dx() > maxImageWidth {
			img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
		}
		if err := imaging.Encode(&body, img, imaging.JPEG); err != nil {
			return "", fmt.Errorf("failed to encode image: %w", err)
		}
		ext = ".jpg"
		contentType = "image/jpeg"
	} else {
		if _, err := file.Seek(0, 0); err != nil {
			return "", fmt.Errorf("failed to rewind upload: %w", err)
		}
		if _, err := body.ReadFrom(file); err != nil {
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
	}

	objectKey := uuid.New().String() + ext
	_, err = c.s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(c.config.Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}

	return c.PublicURL(objectKey), nil
}

// PublicURL returns the browser-facing URL of an uploaded object.
func (c *Client) PublicURL(objectKey string) string {
	if c.config.PublicBaseURL != "" {
		return strings.TrimSuffix(c.config.PublicBaseURL, "/") + "/" + objectKey
	}
	if c.config.EndpointURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.config.EndpointURL, "/"), c.config.Bucket, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.config.Bucket, c.config.Region, objectKey)
}
