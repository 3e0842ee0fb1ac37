package interfaces

import "context"

// IFileStorage uploads bytes to a bucket and returns the public URL.

type IFileStorage interface {
	Upload(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error)
}
