package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdourado/box-geotag-service/internal/adapter/handler/dto/response"
	"github.com/mdourado/box-geotag-service/internal/domain"
	"github.com/mdourado/box-geotag-service/internal/pkg/apperror"
	"github.com/mdourado/box-geotag-service/internal/pkg/httputil"
	"github.com/mdourado/box-geotag-service/internal/usecase/file"
)

const maxUploadSize = 10 << 20 // 10MB

type FileHandler struct {
	fileSvc FileService
}

func NewFileHandler(fileSvc FileService) *FileHandler {
	return &FileHandler{fileSvc: fileSvc}
}

func (h *FileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	f, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer f.Close()

	contentType := header.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_TYPE", "only image uploads are allowed")
		return
	}

	stored, err := h.fileSvc.Upload(c.Request.Context(), file.UploadInput{
		File:        f,
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	})
	if err != nil {
		handleStorageError(c, err)
		return
	}

	httputil.Created(c, response.FileToResponse(stored))
}

func (h *FileHandler) Delete(c *gin.Context) {
	fileID := c.Param("id")
	if fileID == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "file id is required")
		return
	}

	if err := h.fileSvc.Delete(c.Request.Context(), fileID); err != nil {
		handleStorageError(c, err)
		return
	}

	httputil.OK(c, response.StatusResponse{Status: "File deleted successfully"})
}

func (h *FileHandler) Restore(c *gin.Context) {
	fileID := c.Param("id")
	if fileID == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "file id is required")
		return
	}

	stored, err := h.fileSvc.Restore(c.Request.Context(), fileID)
	if err != nil {
		handleStorageError(c, err)
		return
	}

	httputil.OK(c, response.StatusResponse{
		Status:  "File restored successfully",
		Message: stored.Name,
	})
}

func handleStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		httputil.HandleError(c, apperror.NotFound("file"))
	case errors.Is(err, domain.ErrProviderFailure):
		httputil.HandleError(c, apperror.BadGateway("storage provider request failed"))
	default:
		httputil.HandleError(c, apperror.Internal(err))
	}
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/tiff":
		return true
	}
	return false
}
