package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

func InitS3() error {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		return fmt.Errorf("load AWS config for S3: %w", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// S3Ready reports whether InitS3 has run. Snapshot export is optional; a
// deployment without AWS credentials simply skips it.
func S3Ready() bool {
	return s3Client != nil
}

// UploadSnapshot stores a JSON export under snapshots/<userID>/ and returns
// the object key.
func UploadSnapshot(ctx context.Context, userID string, payload []byte) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("s3 client not initialized")
	}
	key := fmt.Sprintf("snapshots/%s/%d.json", userID, time.Now().UnixNano())

	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}
	return key, nil
}
