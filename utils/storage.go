package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxUploadSize caps single image uploads at 4MB.
const MaxUploadSize = 4 << 20

func bucketName() string {
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		return bucket
	}
	return "pizza-website"
}

func getS3Client() (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// UploadImage stores an uploaded file under a unique key and returns the key.
func UploadImage(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file %s exceeds the 4MB upload limit", file.Filename)
	}

	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening upload %s: %w", file.Filename, err)
	}
	defer f.Close()

	client, err := getS3Client()
	if err != nil {
		return "", err
	}
	uploader := manager.NewUploader(client)

	key := uuid.NewString() + filepath.Ext(file.Filename)
	_, err = uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucketName()),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s: %w", file.Filename, err)
	}

	return key, nil
}

// DeleteImage removes a stored object. A blank key is a no-op so replace
// flows can call it unconditionally.
func DeleteImage(key string) error {
	if key == "" {
		return nil
	}

	client, err := getS3Client()
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName()),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting object %s: %w", key, err)
	}
	return nil
}
