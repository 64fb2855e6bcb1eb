// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"okuyan/internal/cache"
	"okuyan/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	AddResponse(ctx context.Context, response *models.Response) error
	GetResponse(ctx context.Context, postID, responseID uint) (*models.Response, error)
	UpdateResponse(ctx context.Context, response *models.Response) error
	DeleteResponse(ctx context.Context, postID, responseID uint) error
	React(ctx context.Context, postID uint, kind models.ReactionKind) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withResponses preloads the response list in creation order.
func withResponses(db *gorm.DB) *gorm.DB {
	return db.Preload("Responses", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("responses.created_at ASC, responses.id ASC")
	})
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidatePostsList(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return withResponses(r.db.WithContext(ctx)).First(&post, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, func() error {
		return withResponses(r.db.WithContext(ctx)).
			Order("created_at DESC, id DESC").
			Find(&posts).Error
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Remove child responses first; FK cascade is not relied on so the
		// behavior is identical on sqlite test databases.
		if err := tx.Where("post_id = ?", id).Delete(&models.Response{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == nil {
		cache.InvalidatePost(ctx, id)
	}
	return err
}

func (r *postRepository) AddResponse(ctx context.Context, response *models.Response) error {
	err := r.db.WithContext(ctx).Create(response).Error
	if err == nil {
		cache.InvalidatePost(ctx, response.PostID)
	}
	return err
}

func (r *postRepository) GetResponse(ctx context.Context, postID, responseID uint) (*models.Response, error) {
	var response models.Response
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", responseID, postID).
		First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *postRepository) UpdateResponse(ctx context.Context, response *models.Response) error {
	if err := r.db.WithContext(ctx).Save(response).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, response.PostID)
	return nil
}

// DeleteResponse removes a response by parent and response identity. A missing
// response is a no-op, matching document array pull semantics.
func (r *postRepository) DeleteResponse(ctx context.Context, postID, responseID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", responseID, postID).
		Delete(&models.Response{}).Error
	if err == nil {
		cache.InvalidatePost(ctx, postID)
	}
	return err
}

// reactionColumns maps reaction kinds to their embedded counter columns.
var reactionColumns = map[models.ReactionKind]string{
	models.ReactionHeart: "reactions_heart",
	models.ReactionSad:   "reactions_sad",
	models.ReactionHappy: "reactions_happy",
}

// React increments exactly one counter by 1 with a single atomic UPDATE.
// Concurrent reactions to the same post never lose increments.
func (r *postRepository) React(ctx context.Context, postID uint, kind models.ReactionKind) error {
	column, ok := reactionColumns[kind]
	if !ok {
		return gorm.ErrInvalidField
	}

	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
