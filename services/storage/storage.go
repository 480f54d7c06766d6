package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrUploadFailed wraps any error coming back from the object store so
// handlers can map it to a single failure kind.
var ErrUploadFailed = errors.New("object storage upload failed")

// Uploader stores a profile image under a key and returns the public URL
// it will be served from.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// S3Uploader uploads to a single S3 bucket. A non-empty Endpoint switches
// the public URL to path style for MinIO-like deployments.
type S3Uploader struct {
	Client   *s3.Client
	Bucket   string
	Region   string
	Endpoint string
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return u.PublicURL(key), nil
}

// PublicURL builds the address the uploaded object is reachable at.
func (u *S3Uploader) PublicURL(key string) string {
	if u.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.Endpoint, "/"), u.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, u.Region, key)
}

// ProfileImageKey is the object key a user's profile picture lives under.
// One key per user: a new upload replaces the previous image.
func ProfileImageKey(username string) string {
	return fmt.Sprintf("%s-profile-image", username)
}
