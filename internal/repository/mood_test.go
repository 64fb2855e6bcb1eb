package repository

import (
	"context"
	"testing"
	"time"

	"okuyan/internal/cache"
	"okuyan/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMoodRepo(t *testing.T) (MoodRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewMoodRepository(client), mr
}

func TestMoodRepository_UpsertAndGet(t *testing.T) {
	repo, mr := setupMoodRepo(t)
	ctx := context.Background()

	mood := &models.Mood{User: models.AuthorSude, Emoji: "🌞", Label: "sunny"}
	require.NoError(t, repo.Upsert(ctx, mood))
	assert.False(t, mood.ExpiresAt.IsZero())

	got, err := repo.Get(ctx, models.AuthorSude)
	require.NoError(t, err)
	assert.Equal(t, models.AuthorSude, got.User)
	assert.Equal(t, "🌞", got.Emoji)
	assert.Equal(t, "sunny", got.Label)

	// The store enforces the 24-hour lifetime itself.
	assert.Equal(t, cache.MoodTTL, mr.TTL(cache.MoodKey(string(models.AuthorSude))))
}

func TestMoodRepository_UpsertResetsExpiry(t *testing.T) {
	repo, mr := setupMoodRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Mood{User: models.AuthorErtan, Emoji: "😴", Label: "sleepy"}))
	mr.FastForward(12 * time.Hour)

	require.NoError(t, repo.Upsert(ctx, &models.Mood{User: models.AuthorErtan, Emoji: "🔥", Label: "motivated"}))
	assert.Equal(t, cache.MoodTTL, mr.TTL(cache.MoodKey(string(models.AuthorErtan))))

	got, err := repo.Get(ctx, models.AuthorErtan)
	require.NoError(t, err)
	assert.Equal(t, "🔥", got.Emoji)
}

func TestMoodRepository_ExpiredMoodIsGone(t *testing.T) {
	repo, mr := setupMoodRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Mood{User: models.AuthorSude, Emoji: "🫠", Label: "melting"}))
	mr.FastForward(cache.MoodTTL + time.Minute)

	_, err := repo.Get(ctx, models.AuthorSude)
	assert.ErrorIs(t, err, redis.Nil)

	moods, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestMoodRepository_ListSkipsAbsentUsers(t *testing.T) {
	repo, _ := setupMoodRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Mood{User: models.AuthorErtan, Emoji: "🎶", Label: "in the zone"}))

	moods, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, models.AuthorErtan, moods[0].User)
}

func TestMoodRepository_NilClient(t *testing.T) {
	repo := NewMoodRepository(nil)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Upsert(ctx, &models.Mood{User: models.AuthorSude}), ErrMoodStoreUnavailable)
	_, err := repo.Get(ctx, models.AuthorSude)
	assert.ErrorIs(t, err, ErrMoodStoreUnavailable)
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, ErrMoodStoreUnavailable)
}
