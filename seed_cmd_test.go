package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneshaps/musicgpt-clone/testutil"
)

func TestSeedCatalogFlushesCacheAfterInsert(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewTestDB(t)
	c := testutil.NewCountingCache()

	result, err := seedCatalog(ctx, gdb, c, false)
	require.NoError(t, err)
	assert.Equal(t, 90, result.Inserted)
	assert.Equal(t, 1, c.Flushes)

	require.NoError(t, c.Set(ctx, "voices:recent?limit=15&page=1", []byte(`{}`), time.Minute))

	result, err = seedCatalog(ctx, gdb, c, false)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, 1, c.Flushes, "a skipped seed leaves the cache alone")
	assert.Len(t, c.Keys(), 1)

	result, err = seedCatalog(ctx, gdb, c, true)
	require.NoError(t, err)
	assert.Equal(t, 90, result.Inserted)
	assert.Equal(t, 2, c.Flushes)
	assert.Empty(t, c.Keys())
}

func TestSeedCatalogIgnoresCacheFailure(t *testing.T) {
	gdb := testutil.NewTestDB(t)

	result, err := seedCatalog(context.Background(), gdb, testutil.FailingCache{}, false)
	require.NoError(t, err)
	assert.Equal(t, 90, result.Inserted)
}
