package server

import (
	"okuyan/internal/models"
	"okuyan/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postRequest mirrors the client-mutable post fields of the JSON API.
type postRequest struct {
	Author  models.Author      `json:"author"`
	Content string             `json:"content"`
	Tags    []string           `json:"tags"`
	Media   []models.MediaItem `json:"media"`
	Style   models.PostStyle   `json:"style"`
}

func (r postRequest) toInput() service.PostInput {
	return service.PostInput{
		Author:  r.Author,
		Content: r.Content,
		Tags:    r.Tags,
		Media:   r.Media,
		Style:   r.Style,
	}
}

// GetPosts handles GET /api/posts. Posts are returned newest first, without
// pagination.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postService.ListPosts(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusCreated, post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/:id. A successful delete carries no
// residual data.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{})
}

// ReactToPost handles POST /api/posts/:id/reactions. It increments exactly
// one of the three named counters and returns the updated post.
func (s *Server) ReactToPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Type models.ReactionKind `json:"type"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.React(ctx, id, req.Type)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, post)
}
