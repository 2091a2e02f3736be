package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/apperrors"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/auth"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/logger"
)

// statusForError maps domain errors onto HTTP status codes. Anything not
// recognised is treated as an internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrMenteeNotFound),
		errors.Is(err, apperrors.ErrMentorNotFound),
		errors.Is(err, apperrors.ErrIssueNotFound),
		errors.Is(err, apperrors.ErrAchievementNotFound),
		errors.Is(err, apperrors.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyAssigned),
		errors.Is(err, apperrors.ErrNotAssigned),
		errors.Is(err, apperrors.ErrIssueClosed),
		errors.Is(err, apperrors.ErrInvalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes the error envelope for a failed request. Internal
// errors are logged and masked outside debug mode.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)

	message := err.Error()
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error while processing request")
		if gin.Mode() == gin.ReleaseMode {
			message = "internal server error"
		}
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

// ErrorHandlerMiddleware converts errors attached to the gin context into the
// standard envelope. Controllers normally call HandleAPIError directly; this
// catches anything pushed through c.Error.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		HandleAPIError(c, c.Errors.Last().Err)
	}
}
