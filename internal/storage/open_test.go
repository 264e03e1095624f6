package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	repo, err := Open(ctx, "sqlite", filepath.Join(t.TempDir(), "nested", "w.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepository{}, repo)
	require.NoError(t, repo.Close())

	repo, err = Open(ctx, "memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepository{}, repo)

	_, err = Open(ctx, "redis", "")
	require.Error(t, err)
}
