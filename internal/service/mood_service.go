package service

import (
	"context"

	"okuyan/internal/models"
	"okuyan/internal/repository"
)

// MoodService handles the ephemeral per-user mood status.
type MoodService struct {
	moodRepo repository.MoodRepository
}

// MoodInput carries a mood upsert. Empty emoji and label are accepted; the
// client uses an empty mood as its "cleared" convention.
type MoodInput struct {
	User  models.Author
	Emoji string
	Label string
}

// NewMoodService creates a new mood service.
func NewMoodService(moodRepo repository.MoodRepository) *MoodService {
	return &MoodService{moodRepo: moodRepo}
}

// SetMood upserts the mood for one identity with a fresh 24-hour expiry.
func (s *MoodService) SetMood(ctx context.Context, in MoodInput) (*models.Mood, error) {
	if !in.User.Valid() {
		return nil, models.NewValidationError("User must be one of the diary users")
	}

	mood := &models.Mood{
		User:  in.User,
		Emoji: in.Emoji,
		Label: in.Label,
	}
	if err := s.moodRepo.Upsert(ctx, mood); err != nil {
		return nil, err
	}
	return mood, nil
}

// ListMoods returns the moods the store has not yet expired.
func (s *MoodService) ListMoods(ctx context.Context) ([]*models.Mood, error) {
	return s.moodRepo.List(ctx)
}
