package repository

import (
	"context"
	"testing"
	"time"

	"okuyan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPost(t *testing.T, repo PostRepository, author models.Author, content string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Author:    author,
		Content:   content,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_ListOrdersNewestFirst(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of chronological order on purpose.
	createPost(t, repo, models.AuthorSude, "middle", base.Add(1*time.Hour))
	createPost(t, repo, models.AuthorErtan, "oldest", base)
	createPost(t, repo, models.AuthorSude, "newest", base.Add(2*time.Hour))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Content)
	assert.Equal(t, "middle", posts[1].Content)
	assert.Equal(t, "oldest", posts[2].Content)
}

func TestPostRepository_ReactIncrementsOneCounter(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := createPost(t, repo, models.AuthorSude, "react to me", time.Now())

	require.NoError(t, repo.React(ctx, post.ID, models.ReactionHeart))
	require.NoError(t, repo.React(ctx, post.ID, models.ReactionHeart))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Reactions.Heart)
	assert.Equal(t, 0, got.Reactions.Sad)
	assert.Equal(t, 0, got.Reactions.Happy)
}

func TestPostRepository_ReactMissingPost(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	err := repo.React(context.Background(), 999, models.ReactionHappy)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostRepository_DeleteRemovesPostAndResponses(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := createPost(t, repo, models.AuthorErtan, "to be deleted", time.Now())
	require.NoError(t, repo.AddResponse(ctx, &models.Response{
		PostID:  post.ID,
		Author:  models.AuthorSude,
		Content: "a reply",
	}))

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_DeleteMissingPost(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostRepository_ResponsesOrderedByCreation(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := createPost(t, repo, models.AuthorSude, "entry", time.Now())
	base := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, repo.AddResponse(ctx, &models.Response{
			PostID:    post.ID,
			Author:    models.AuthorErtan,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Responses, 3)
	assert.Equal(t, "first", got.Responses[0].Content)
	assert.Equal(t, "third", got.Responses[2].Content)
}

func TestPostRepository_UpdateResponseLeavesSiblingsUntouched(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := createPost(t, repo, models.AuthorSude, "entry", time.Now())
	first := &models.Response{PostID: post.ID, Author: models.AuthorErtan, Content: "keep me"}
	second := &models.Response{PostID: post.ID, Author: models.AuthorSude, Content: "edit me", MusicURL: "https://example.com/a"}
	require.NoError(t, repo.AddResponse(ctx, first))
	require.NoError(t, repo.AddResponse(ctx, second))

	second.Content = "edited"
	require.NoError(t, repo.UpdateResponse(ctx, second))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Responses, 2)
	assert.Equal(t, "keep me", got.Responses[0].Content)
	assert.Equal(t, "edited", got.Responses[1].Content)
	assert.Equal(t, "https://example.com/a", got.Responses[1].MusicURL)
}

func TestPostRepository_GetResponseScopedToParent(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	postA := createPost(t, repo, models.AuthorSude, "a", time.Now())
	postB := createPost(t, repo, models.AuthorErtan, "b", time.Now())
	response := &models.Response{PostID: postA.ID, Author: models.AuthorErtan, Content: "on A"}
	require.NoError(t, repo.AddResponse(ctx, response))

	_, err := repo.GetResponse(ctx, postB.ID, response.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetResponse(ctx, postA.ID, response.ID)
	require.NoError(t, err)
	assert.Equal(t, "on A", got.Content)
}

func TestPostRepository_DeleteResponseMissingIsNoOp(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := createPost(t, repo, models.AuthorSude, "entry", time.Now())

	// Removing a response id that does not exist must not error.
	assert.NoError(t, repo.DeleteResponse(ctx, post.ID, 12345))
}

func TestPostRepository_CreateRoundTrip(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := &models.Post{
		Author:  models.AuthorSude,
		Content: "full entry",
		Tags:    []string{"music", "rain"},
		Media: []models.MediaItem{
			{Type: models.MediaImage, URL: "/media/x.webp"},
		},
		Style: models.PostStyle{
			BackgroundColor: "#fdf6e3",
			TextColor:       "#586e75",
			FontFamily:      "Lora",
		},
	}
	require.NoError(t, repo.Create(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Author, got.Author)
	assert.Equal(t, post.Content, got.Content)
	assert.Equal(t, post.Tags, got.Tags)
	assert.Equal(t, post.Media, got.Media)
	assert.Equal(t, post.Style, got.Style)
}
