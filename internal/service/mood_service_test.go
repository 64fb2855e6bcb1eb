package service

import (
	"context"
	"testing"

	"okuyan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moodRepoStub struct {
	upsertFn func(context.Context, *models.Mood) error
	getFn    func(context.Context, models.Author) (*models.Mood, error)
	listFn   func(context.Context) ([]*models.Mood, error)
}

func (s *moodRepoStub) Upsert(ctx context.Context, mood *models.Mood) error {
	return s.upsertFn(ctx, mood)
}
func (s *moodRepoStub) Get(ctx context.Context, user models.Author) (*models.Mood, error) {
	return s.getFn(ctx, user)
}
func (s *moodRepoStub) List(ctx context.Context) ([]*models.Mood, error) {
	return s.listFn(ctx)
}

func TestMoodService_SetMood_RejectsUnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewMoodService(&moodRepoStub{})
	_, err := svc.SetMood(context.Background(), MoodInput{User: "Stranger", Emoji: "🌞"})
	assertValidationError(t, err)
}

func TestMoodService_SetMood_EmptyMoodAllowed(t *testing.T) {
	t.Parallel()

	// An empty emoji/label is the client's "cleared" convention and must pass.
	var stored *models.Mood
	repo := &moodRepoStub{
		upsertFn: func(_ context.Context, mood *models.Mood) error {
			stored = mood
			return nil
		},
	}
	svc := NewMoodService(repo)

	mood, err := svc.SetMood(context.Background(), MoodInput{User: models.AuthorErtan})
	require.NoError(t, err)
	assert.Equal(t, models.AuthorErtan, mood.User)
	assert.Empty(t, mood.Emoji)
	assert.Same(t, mood, stored)
}
