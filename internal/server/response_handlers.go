package server

import (
	"okuyan/internal/models"
	"okuyan/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateResponse handles POST /api/posts/:id/responses. The reply is the
// entire updated parent post.
func (s *Server) CreateResponse(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Author   models.Author `json:"author"`
		Content  string        `json:"content"`
		MusicURL string        `json:"musicUrl"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.AddResponse(ctx, postID, service.ResponseInput{
		Author:   req.Author,
		Content:  req.Content,
		MusicURL: req.MusicURL,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusCreated, post)
}

// UpdateResponse handles PUT /api/posts/:postId/responses/:responseId.
// Content is replaced; musicUrl only when present in the body.
func (s *Server) UpdateResponse(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	responseID, err := s.parseID(c, "responseId")
	if err != nil {
		return nil
	}

	var req struct {
		Content  string  `json:"content"`
		MusicURL *string `json:"musicUrl"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdateResponse(ctx, postID, responseID, service.ResponseEdit{
		Content:  req.Content,
		MusicURL: req.MusicURL,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, post)
}

// DeleteResponse handles DELETE /api/posts/:postId/responses/:responseId.
// A missing parent is a 404; a missing response under a live parent is a
// no-op and still returns the post.
func (s *Server) DeleteResponse(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	responseID, err := s.parseID(c, "responseId")
	if err != nil {
		return nil
	}

	post, err := s.postService.DeleteResponse(ctx, postID, responseID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, post)
}
