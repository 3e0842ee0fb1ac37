package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"plaiz_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage uploads project files and portfolio images. Objects are served
// from PublicBaseURL/<bucket>/<key>.
type S3Storage struct {
	client        objectPutter
	publicBaseURL string
	log           *zap.Logger
}

var _ interfaces.IFileStorage = (*S3Storage)(nil)

func NewS3Storage(client *s3.Client, publicBaseURL string, log *zap.Logger) *S3Storage {
	return newS3Storage(client, publicBaseURL, log)
}

func newS3Storage(client objectPutter, publicBaseURL string, log *zap.Logger) *S3Storage {
	if log == nil {
		log = zap.NewNop()
	}
	return &S3Storage{
		client:        client,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		log:           log,
	}
}

func (s *S3Storage) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		s.log.Error("[storage][s3] put object failed", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	s.log.Info("[storage][s3] put object success", zap.String("bucket", bucket), zap.String("key", key), zap.Int("size", len(body)))
	return s.PublicURL(bucket, key), nil
}

// PublicURL escapes every key segment but keeps the separators.
func (s *S3Storage) PublicURL(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, strings.Join(segments, "/"))
}
