// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// MediaKind enumerates the attachment types a post may carry.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// Valid reports whether k is a recognized media kind.
func (k MediaKind) Valid() bool {
	return k == MediaImage || k == MediaVideo || k == MediaAudio
}

// MediaItem is a single attachment on a post.
type MediaItem struct {
	Type MediaKind `json:"type"`
	URL  string    `json:"url"`
}

// PostStyle holds the presentation attributes of a post. All fields are
// free-form strings; defaults are applied server-side when omitted.
type PostStyle struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

// Default style values applied when the client omits them.
const (
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#000000"
	DefaultFontFamily      = "Inter"
)

// ApplyDefaults fills empty style fields with their defaults.
func (s *PostStyle) ApplyDefaults() {
	if s.BackgroundColor == "" {
		s.BackgroundColor = DefaultBackgroundColor
	}
	if s.TextColor == "" {
		s.TextColor = DefaultTextColor
	}
	if s.FontFamily == "" {
		s.FontFamily = DefaultFontFamily
	}
}

// ReactionKind names one of the three per-post reaction counters.
type ReactionKind string

const (
	ReactionHeart ReactionKind = "heart"
	ReactionSad   ReactionKind = "sad"
	ReactionHappy ReactionKind = "happy"
)

// Valid reports whether k names a known reaction counter. Unknown values are
// rejected rather than silently creating new counters.
func (k ReactionKind) Valid() bool {
	return k == ReactionHeart || k == ReactionSad || k == ReactionHappy
}

// Reactions holds the three per-post counters. Counters only increment.
type Reactions struct {
	Heart int `gorm:"not null;default:0" json:"heart"`
	Sad   int `gorm:"not null;default:0" json:"sad"`
	Happy int `gorm:"not null;default:0" json:"happy"`
}

// Response is a nested comment attached to a post.
type Response struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	Author    Author    `gorm:"type:varchar(16);not null" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	MusicURL  string    `json:"musicUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a diary entry authored by one of the two fixed users.
type Post struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Author    Author      `gorm:"type:varchar(16);not null" json:"author"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Tags      []string    `gorm:"serializer:json" json:"tags,omitempty"`
	Media     []MediaItem `gorm:"serializer:json" json:"media"`
	Style     PostStyle   `gorm:"serializer:json" json:"style"`
	Responses []Response  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"responses"`
	Reactions Reactions   `gorm:"embedded;embeddedPrefix:reactions_" json:"reactions"`
	CreatedAt time.Time   `json:"createdAt"`
}
