// Package seed provides helpers to create demo diary content for
// development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"okuyan/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds diary entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db       *gorm.DB
	fixtures Fixtures
	rng      *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) (*Factory, error) {
	fx, err := LoadFixtures()
	if err != nil {
		return nil, err
	}
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, fixtures: fx, rng: rng}, nil
}

// BuildPost constructs a post without persisting it. Useful for batching.
func (f *Factory) BuildPost(author models.Author, overrides ...func(*models.Post)) *models.Post {
	palette := f.fixtures.Palettes[f.rng.Intn(len(f.fixtures.Palettes))]

	post := &models.Post{
		Author:  author,
		Content: gofakeit.Paragraph(1, f.rng.Intn(4)+1, 8, "\n"),
		Tags:    f.randomTags(),
		Style: models.PostStyle{
			BackgroundColor: palette.BackgroundColor,
			TextColor:       palette.TextColor,
			FontFamily:      palette.FontFamily,
		},
	}

	if f.rng.Float32() < 0.3 {
		post.Media = []models.MediaItem{{
			Type: models.MediaImage,
			URL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		}}
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample post for the given author.
func (f *Factory) CreatePost(author models.Author, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(author, overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateResponse constructs and persists a response on the provided post.
// The response author is the other diary user unless overridden.
func (f *Factory) CreateResponse(post *models.Post, overrides ...func(*models.Response)) (*models.Response, error) {
	response := &models.Response{
		PostID:  post.ID,
		Author:  otherAuthor(post.Author),
		Content: gofakeit.Sentence(f.rng.Intn(10) + 3),
	}

	if f.rng.Float32() < 0.25 && len(f.fixtures.MusicURLs) > 0 {
		response.MusicURL = f.fixtures.MusicURLs[f.rng.Intn(len(f.fixtures.MusicURLs))]
	}

	for _, override := range overrides {
		override(response)
	}

	if err := f.db.Create(response).Error; err != nil {
		return nil, err
	}
	return response, nil
}

// RandomMood builds a mood from the curated presets for the given user.
func (f *Factory) RandomMood(user models.Author) *models.Mood {
	preset := f.fixtures.Moods[f.rng.Intn(len(f.fixtures.Moods))]
	return &models.Mood{
		User:  user,
		Emoji: preset.Emoji,
		Label: preset.Label,
	}
}

func (f *Factory) randomTags() []string {
	count := f.rng.Intn(3)
	if count == 0 {
		return nil
	}
	tags := make([]string, 0, count)
	seen := map[string]bool{}
	for len(tags) < count {
		tag := f.fixtures.Tags[f.rng.Intn(len(f.fixtures.Tags))]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func otherAuthor(a models.Author) models.Author {
	for _, candidate := range models.Authors() {
		if candidate != a {
			return candidate
		}
	}
	return a
}
