package server

import (
	"errors"

	"okuyan/internal/models"
	"okuyan/internal/repository"
	"okuyan/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMoods handles GET /api/moods. Expired moods are never returned; the
// store drops them on their own.
func (s *Server) GetMoods(c *fiber.Ctx) error {
	ctx := c.UserContext()

	moods, err := s.moodService.ListMoods(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrMoodStoreUnavailable) {
			return models.RespondWithError(c, fiber.StatusServiceUnavailable, err)
		}
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, moods)
}

// SetMood handles POST /api/moods. It replaces the caller's current mood and
// restarts the 24-hour expiry clock.
func (s *Server) SetMood(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		User  models.Author `json:"user"`
		Emoji string        `json:"emoji"`
		Label string        `json:"label"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	mood, err := s.moodService.SetMood(ctx, service.MoodInput{
		User:  req.User,
		Emoji: req.Emoji,
		Label: req.Label,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMoodStoreUnavailable) {
			return models.RespondWithError(c, fiber.StatusServiceUnavailable, err)
		}
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, mood)
}
