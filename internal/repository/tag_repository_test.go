package repository_test

import (
	"context"
	"sync"
	"testing"

	"dishlist/backend/internal/models"
	"dishlist/backend/internal/repository"
	"dishlist/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepository_EnsureIsCreateIfAbsent(t *testing.T) {
	db := testutil.NewDB(t)
	store := repository.NewStore(db)
	ctx := context.Background()

	first, err := store.Tags.Ensure(ctx, "brunch")
	require.NoError(t, err)
	second, err := store.Tags.Ensure(ctx, "brunch")
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.Equal(t, first.ID, second.ID)
}

func TestTagRepository_ConcurrentEnsureConverges(t *testing.T) {
	db := testutil.NewDB(t)
	store := repository.NewStore(db)
	ctx := context.Background()

	const workers = 8
	ids := make([]uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tag, err := store.Tags.Ensure(ctx, "ramen")
			if assert.NoError(t, err) {
				ids[i] = tag.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Where("name = ?", "ramen").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTagRepository_Registered(t *testing.T) {
	db := testutil.NewDB(t)
	store := repository.NewStore(db)
	ctx := context.Background()

	_, err := store.Tags.Ensure(ctx, "date")
	require.NoError(t, err)

	registered, err := store.Tags.Registered(ctx, []string{"date", "family"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"date": true}, registered)
}
