package handler

import (
	"net/http"

	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/infrastructure/storage"

	"github.com/labstack/echo/v4"
)

// MediaHandler serves the admin media upload endpoint.
type MediaHandler struct {
	storage *storage.S3Service
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(s *storage.S3Service) *MediaHandler {
	return &MediaHandler{storage: s}
}

// MediaUploadResponse carries the stored object key and its public URL.
type MediaUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (h *MediaHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	key, err := h.storage.Upload(c.Request().Context(), file.Filename, contentType, src)
	if err != nil {
		return HandleError(c, err)
	}

	return c.JSON(http.StatusCreated, MediaUploadResponse{
		Key: key,
		URL: h.storage.URL(key),
	})
}
