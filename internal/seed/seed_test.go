package seed

import (
	"testing"

	"okuyan/internal/database"
	"okuyan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestLoadFixtures(t *testing.T) {
	fx, err := LoadFixtures()
	require.NoError(t, err)
	assert.NotEmpty(t, fx.Palettes)
	assert.NotEmpty(t, fx.Tags)
	assert.NotEmpty(t, fx.Moods)
	assert.NotEmpty(t, fx.MusicURLs)

	for _, p := range fx.Palettes {
		assert.NotEmpty(t, p.BackgroundColor)
		assert.NotEmpty(t, p.TextColor)
		assert.NotEmpty(t, p.FontFamily)
	}
}

func TestFactory_CreatePost(t *testing.T) {
	db := setupSeedDB(t)
	factory, err := NewFactory(db)
	require.NoError(t, err)

	post, err := factory.CreatePost(models.AuthorSude)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, models.AuthorSude, post.Author)
	assert.NotEmpty(t, post.Content)
	assert.NotEmpty(t, post.Style.BackgroundColor)
}

func TestFactory_CreateResponse_UsesOtherAuthor(t *testing.T) {
	db := setupSeedDB(t)
	factory, err := NewFactory(db)
	require.NoError(t, err)

	post, err := factory.CreatePost(models.AuthorErtan)
	require.NoError(t, err)

	response, err := factory.CreateResponse(post)
	require.NoError(t, err)
	assert.Equal(t, post.ID, response.PostID)
	assert.Equal(t, models.AuthorSude, response.Author)
	assert.NotEmpty(t, response.Content)
}

func TestSeed(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Seed(db, Options{NumPosts: 6}))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 6, count)
}

func TestBuiltIns_Idempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, BuiltIns(db))
	var after1 int64
	require.NoError(t, db.Model(&models.Post{}).Count(&after1).Error)
	assert.EqualValues(t, len(welcomePosts), after1)

	// A second run on a populated database creates nothing.
	require.NoError(t, BuiltIns(db))
	var after2 int64
	require.NoError(t, db.Model(&models.Post{}).Count(&after2).Error)
	assert.Equal(t, after1, after2)
}
