package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"okuyan/internal/cache"
	"okuyan/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrMoodStoreUnavailable is returned when no Redis client is configured.
var ErrMoodStoreUnavailable = errors.New("mood store unavailable")

// MoodRepository defines the interface for mood data operations. Moods are
// kept in Redis so record expiry is enforced by the store itself.
type MoodRepository interface {
	Upsert(ctx context.Context, mood *models.Mood) error
	Get(ctx context.Context, user models.Author) (*models.Mood, error)
	List(ctx context.Context) ([]*models.Mood, error)
}

type moodRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoodRepository creates a Redis-backed mood repository with the standard
// 24-hour lifetime.
func NewMoodRepository(client *redis.Client) MoodRepository {
	return &moodRepository{client: client, ttl: cache.MoodTTL}
}

// Upsert stores the mood under its user key, replacing any live record and
// resetting the TTL. ExpiresAt is stamped from the same deadline Redis uses.
func (r *moodRepository) Upsert(ctx context.Context, mood *models.Mood) error {
	if r.client == nil {
		return ErrMoodStoreUnavailable
	}

	mood.ExpiresAt = time.Now().UTC().Add(r.ttl)
	payload, err := json.Marshal(mood)
	if err != nil {
		return fmt.Errorf("encode mood: %w", err)
	}

	return r.client.Set(ctx, cache.MoodKey(string(mood.User)), payload, r.ttl).Err()
}

// Get returns the live mood for a user, or redis.Nil if none.
func (r *moodRepository) Get(ctx context.Context, user models.Author) (*models.Mood, error) {
	if r.client == nil {
		return nil, ErrMoodStoreUnavailable
	}

	raw, err := r.client.Get(ctx, cache.MoodKey(string(user))).Bytes()
	if err != nil {
		return nil, err
	}

	var mood models.Mood
	if err := json.Unmarshal(raw, &mood); err != nil {
		return nil, fmt.Errorf("decode mood: %w", err)
	}
	return &mood, nil
}

// List returns whichever of the two users' moods the store has not expired.
func (r *moodRepository) List(ctx context.Context) ([]*models.Mood, error) {
	if r.client == nil {
		return nil, ErrMoodStoreUnavailable
	}

	moods := make([]*models.Mood, 0, 2)
	for _, user := range models.Authors() {
		mood, err := r.Get(ctx, user)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		moods = append(moods, mood)
	}
	return moods, nil
}
