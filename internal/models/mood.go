package models

import "time"

// Mood is an ephemeral per-user status. Moods live in Redis under a TTL so
// "current" is whatever the store has not yet expired; at most one live
// record exists per user and setting a mood resets its expiry.
type Mood struct {
	User      Author    `json:"user"`
	Emoji     string    `json:"emoji"`
	Label     string    `json:"label"`
	ExpiresAt time.Time `json:"expiresAt"`
}
