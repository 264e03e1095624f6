package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/workplace/internal/filex"
)

// Open returns the repository for backend: "sqlite" opens and migrates the
// database file at dsn (creating its directory), "memory" ignores dsn.
func Open(ctx context.Context, backend, dsn string) (Repository, error) {
	switch backend {
	case "sqlite":
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
		return InitDatabase(ctx, dsn)
	case "memory":
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
