package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Mrco45/FLEXFINAL/internal/config"
)

// UploadHandler receives attachment files and stores them under the
// configured uploads directory, served back as /images/<name>. Uploads
// happen one request per file, before the order itself is submitted.
type UploadHandler struct {
	cfg *config.Config
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload stores a single multipart file (field "image") and replies with
// the generated filename and its public URL. Missing or oversized files are
// explicit errors rather than silent drops.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	if file.Size > h.cfg.MaxUploadMB<<20 {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds the %d MB upload limit", h.cfg.MaxUploadMB))
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return err
	}

	name := uuid.NewString() + "-" + sanitizeFilename(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"filename": name,
		"url":      "/images/" + name,
	})
}

// sanitizeFilename strips any path components from a client-supplied name.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return "file"
	}
	return name
}
