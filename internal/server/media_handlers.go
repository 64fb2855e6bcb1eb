package server

import (
	"io"

	"okuyan/internal/models"
	"okuyan/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia handles POST /api/upload. It accepts one multipart file field
// named "file" and answers with the public URL and detected media kind.
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
	}

	stored, err := s.mediaService.Upload(ctx, service.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	// Uploads answer with url and type at the top level, next to success,
	// rather than under data.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"url":     stored.URL,
		"type":    stored.Type,
	})
}
