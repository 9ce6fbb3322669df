package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/brito-dev/portfolio-backend/internal/api/response"
	"github.com/brito-dev/portfolio-backend/internal/storage"
)

// UploadHandler handles admin file uploads
type UploadHandler struct {
	storage storage.UploadStorage
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store storage.UploadStorage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// UploadResponse carries the public URL of a stored upload.
type UploadResponse struct {
	URL      string `json:"url"`
	Bucket   string `json:"bucket"`
	Filename string `json:"filename"`
}

// Upload handles POST /api/admin/uploads/:bucket. Expects a multipart form
// with a single "file" field.
func (h *UploadHandler) Upload(c echo.Context) error {
	bucket := c.Param("bucket")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "missing file field")
	}

	if err := storage.ValidateFile(bucket, fileHeader.Filename, fileHeader.Size); err != nil {
		switch {
		case errors.Is(err, storage.ErrUnknownBucket):
			return response.NotFound(c, "unknown upload bucket")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.InternalError(c, "failed to read upload")
	}
	defer src.Close()

	url, err := h.storage.Save(bucket, fileHeader.Filename, src)
	if err != nil {
		return response.InternalError(c, "failed to store upload")
	}

	return response.Created(c, UploadResponse{
		URL:      url,
		Bucket:   bucket,
		Filename: fileHeader.Filename,
	})
}
