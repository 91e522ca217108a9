package resume

import (
	"net/http"

	resumeerrors "github.com/VaibhavBaliyan/hirenest/internal/resume/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("resume.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resume.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("resume request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		h.writeServiceError(c, resumeerrors.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, resumeerrors.ErrFileRequired)
		return
	}
	defer file.Close()

	resp, err := h.service.Upload(c.Request.Context(), c.GetString("user_id"), UploadInput{
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   file,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Activate(c *gin.Context) {
	resp, err := h.service.Activate(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Resume deleted successfully"}, nil)
}
