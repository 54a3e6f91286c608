package port

import "context"

// ObjectStorage abstracts the store holding raw uploaded estimate documents.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
