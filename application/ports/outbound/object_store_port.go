package outbound

import "context"

type ObjectStorePort interface {
	Fetch(ctx context.Context, bucket string, key string) ([]byte, error)
	Store(ctx context.Context, bucket string, key string, body []byte) error
	ListKeys(ctx context.Context, bucket string, prefix string, suffix string) ([]string, error)
}
