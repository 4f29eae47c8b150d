package ports

import (
	"context"

	"apt-repo-function/internal/types"
)

// BlobStorePort is the capability interface the core depends on instead of a
// concrete blob store. Upload always overwrites; enumeration order of List is
// whatever the store reports and callers must not depend on it beyond using
// it consistently within one pass.
type BlobStorePort interface {
	List(ctx context.Context) ([]types.ObjectInfo, error)
	Exists(ctx context.Context, name string) (bool, error)
	Properties(ctx context.Context, name string) (types.ObjectInfo, error)
	Download(ctx context.Context, name string) ([]byte, error)
	Upload(ctx context.Context, name string, data []byte, tags map[string]string) error
}
