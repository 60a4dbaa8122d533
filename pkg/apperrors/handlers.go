package apperrors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный JSON-ответ об ошибке.
// Контракт API: { "success": false, "message": "...", "error": {...} }
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error,omitempty"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, appErr *AppError) {
	// Детали внутренних ошибок остаются в логах, клиент видит общий текст
	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
		if !h.Debug {
			appErr = New(CodeInternalError, "system", "Something went wrong!", http.StatusInternalServerError)
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// HandleError - обработка ошибок для Gin контекста.
// Неизвестные ошибки оборачиваются в InternalError.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}

	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	handler.HandleGinError(c, appErr)
}
