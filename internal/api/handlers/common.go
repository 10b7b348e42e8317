package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	apperrors "github.com/fund-insight/fund_service/pkg/errors"
	"github.com/fund-insight/fund_service/pkg/logger"
)

// getRequestID extracts request ID from context
func getRequestID(c *gin.Context) string {
	if reqID, exists := c.Get("request_id"); exists {
		if id, ok := reqID.(string); ok {
			return id
		}
	}
	return ""
}

// requestLogger prefers the per-request logger set by the logging middleware
func requestLogger(c *gin.Context, fallback *logger.Logger) *logger.Logger {
	if l, ok := c.Get("logger"); ok {
		if reqLogger, ok := l.(*logger.Logger); ok {
			return reqLogger
		}
	}
	return fallback.ForRequest(getRequestID(c), c.Request.Method, c.Request.URL.Path)
}

// respondError maps err onto a status code and the standard error body.
// Server-side failures are logged, client errors are not.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	appErr := apperrors.FromError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		requestLogger(c, log).WithContext(c.Request.Context()).Errorw("Request failed",
			"code", appErr.Code,
			"error", err,
		)
	}

	c.JSON(appErr.StatusCode, entities.ErrorResponse{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// respondBadRequest sends a 400 with the offending field
func respondBadRequest(c *gin.Context, message, field string) {
	appErr := apperrors.InvalidInput(message)
	if field != "" {
		appErr.AddDetail("field", field)
	}
	c.JSON(appErr.StatusCode, entities.ErrorResponse{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}
