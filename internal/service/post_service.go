// Package service contains the application's business rules on top of the
// repository layer.
package service

import (
	"context"
	"errors"

	"okuyan/internal/models"
	"okuyan/internal/observability"
	"okuyan/internal/repository"

	"gorm.io/gorm"
)

const maxContentLen = 10000

// PostService enforces the diary's domain rules: the closed author set,
// required content, recognized media and reaction kinds.
type PostService struct {
	postRepo repository.PostRepository
}

// PostInput carries the client-mutable fields of a post. Create and update
// validate it against the same rules.
type PostInput struct {
	Author  models.Author
	Content string
	Tags    []string
	Media   []models.MediaItem
	Style   models.PostStyle
}

// ResponseInput carries the fields of a new response.
type ResponseInput struct {
	Author   models.Author
	Content  string
	MusicURL string
}

// ResponseEdit carries a response edit. MusicURL is a pointer so "not
// supplied" and "cleared" stay distinguishable.
type ResponseEdit struct {
	Content  string
	MusicURL *string
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func validatePostInput(in PostInput) error {
	if !in.Author.Valid() {
		return models.NewValidationError("Author must be one of the diary users")
	}
	if in.Content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return models.NewValidationError("Content too long (max 10000 characters)")
	}
	for _, m := range in.Media {
		if !m.Type.Valid() {
			return models.NewValidationError("Media type must be image, video, or audio")
		}
		if m.URL == "" {
			return models.NewValidationError("Media URL is required")
		}
	}
	return nil
}

// CreatePost validates the input and persists a new post. Identity and
// creation timestamp are server-assigned.
func (s *PostService) CreatePost(ctx context.Context, in PostInput) (*models.Post, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}

	style := in.Style
	style.ApplyDefaults()

	post := &models.Post{
		Author:  in.Author,
		Content: in.Content,
		Tags:    in.Tags,
		Media:   in.Media,
		Style:   style,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostMutations.WithLabelValues("create").Inc()

	return s.postRepo.GetByID(ctx, post.ID)
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a single post by identity.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asPostNotFound(err)
	}
	return post, nil
}

// UpdatePost replaces the mutable fields of an existing post. Concurrent
// edits are last-writer-wins; there is no version check.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in PostInput) (*models.Post, error) {
	if err := validatePostInput(in); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asPostNotFound(err)
	}

	style := in.Style
	style.ApplyDefaults()

	post.Author = in.Author
	post.Content = in.Content
	post.Tags = in.Tags
	post.Media = in.Media
	post.Style = style

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	observability.PostMutations.WithLabelValues("update").Inc()

	return s.postRepo.GetByID(ctx, id)
}

// DeletePost removes a post and its responses.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return asPostNotFound(err)
	}
	observability.PostMutations.WithLabelValues("delete").Inc()
	return nil
}

// AddResponse appends a response to an existing post and returns the whole
// updated post.
func (s *PostService) AddResponse(ctx context.Context, postID uint, in ResponseInput) (*models.Post, error) {
	if !in.Author.Valid() {
		return nil, models.NewValidationError("Author must be one of the diary users")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asPostNotFound(err)
	}

	response := &models.Response{
		PostID:   postID,
		Author:   in.Author,
		Content:  in.Content,
		MusicURL: in.MusicURL,
	}
	if err := s.postRepo.AddResponse(ctx, response); err != nil {
		return nil, err
	}
	observability.PostMutations.WithLabelValues("respond").Inc()

	return s.postRepo.GetByID(ctx, postID)
}

// UpdateResponse edits a response's content (and music URL when supplied) and
// returns the whole updated post. Sibling responses are untouched.
func (s *PostService) UpdateResponse(ctx context.Context, postID, responseID uint, edit ResponseEdit) (*models.Post, error) {
	if edit.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asPostNotFound(err)
	}

	response, err := s.postRepo.GetResponse(ctx, postID, responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Response")
		}
		return nil, err
	}

	response.Content = edit.Content
	if edit.MusicURL != nil {
		response.MusicURL = *edit.MusicURL
	}
	if err := s.postRepo.UpdateResponse(ctx, response); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// DeleteResponse removes a response under an existing parent and returns the
// whole updated post. A response id that does not resolve is a no-op, not an
// error; only a missing parent is.
func (s *PostService) DeleteResponse(ctx context.Context, postID, responseID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asPostNotFound(err)
	}

	if err := s.postRepo.DeleteResponse(ctx, postID, responseID); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// React increments one named counter by exactly 1 and returns the updated
// post. Unknown counter names are rejected rather than silently created.
func (s *PostService) React(ctx context.Context, postID uint, kind models.ReactionKind) (*models.Post, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Reaction type must be heart, sad, or happy")
	}

	if err := s.postRepo.React(ctx, postID, kind); err != nil {
		return nil, asPostNotFound(err)
	}
	observability.PostMutations.WithLabelValues("react").Inc()

	return s.postRepo.GetByID(ctx, postID)
}

func asPostNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Post")
	}
	return err
}
