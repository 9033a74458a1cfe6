package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zanara/internal/logger"
	"zanara/internal/validator"
	"zanara/pkg/apperrors"
)

// respondError writes the standard error envelope: {"error": {...}}.
// Non-AppError failures become opaque 500s.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) {
		var vErr *validator.ValidationError
		if apperrors.As(err, &vErr) {
			appErr = apperrors.ValidationError(vErr.Errors)
		} else {
			logger.WithError(err).Error("unhandled error in dev server")
			appErr = apperrors.InternalError(err)
		}
	}
	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, gin.H{"error": appErr})
}
