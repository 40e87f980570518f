package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/infrastructure/storage"
	"shreeanna/pkg/errors"
	"shreeanna/pkg/response"
)

var fileHandler *FileHandler

// FileHandler accepts multipart image uploads for crop and product listings
// and stores them on disk.
type FileHandler struct {
	store *storage.LocalStore
}

func SetupFileHandler(store *storage.LocalStore) {
	fileHandler = &FileHandler{store: store}
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

const maxUploadBytes = 5 << 20 // 5 MB

func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("A file is required", err))
	}
	if fileHeader.Size > maxUploadBytes {
		return response.Error(c, errors.BadRequest("File exceeds the 5 MB limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
	default:
		return response.Error(c, errors.BadRequest("Only image uploads are allowed", nil))
	}

	folder := c.FormValue("folder")
	if folder != "crops" && folder != "products" {
		folder = "misc"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.store.UploadFile(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store file", err))
	}
	return response.Created(c, map[string]string{"url": url})
}

func (h *FileHandler) Delete(c echo.Context) error {
	var req struct {
		URL string `json:"url" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.store.DeleteFile(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, errors.BadRequest("Failed to delete file", err))
	}
	return response.Success(c, map[string]string{"message": "File deleted"})
}
