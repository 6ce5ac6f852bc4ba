package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/raqamly/console/internal/auth/domain"
	campaigndomain "github.com/raqamly/console/internal/campaign/domain"
	catalogdomain "github.com/raqamly/console/internal/catalog/domain"
	notificationdomain "github.com/raqamly/console/internal/notification/domain"
	productdomain "github.com/raqamly/console/internal/product/domain"
	"github.com/raqamly/console/internal/providers/textgen"
	userdomain "github.com/raqamly/console/internal/user/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// mapError translates domain errors into an HTTP status and wire payload.
func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, textgen.ErrNoCredential):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "configuration_error",
			Code:    "generation_credential_missing",
			Message: "text generation is not configured",
		}

	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{
			Type:    "auth_error",
			Code:    "invalid_credentials",
			Message: "invalid email or password",
		}
	case errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked):
		return http.StatusUnauthorized, errorPayload{
			Type:    "auth_error",
			Code:    "invalid_session",
			Message: "session is not valid",
		}

	case errors.Is(err, authdomain.ErrIdentityExists),
		errors.Is(err, userdomain.ErrExists):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Code:    "already_exists",
			Message: "resource already exists",
		}
	case errors.Is(err, campaigndomain.ErrSuperseded):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Code:    "superseded",
			Message: "a newer generation request replaced this one",
		}

	case errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, campaigndomain.ErrNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, notificationdomain.ErrNotFound),
		errors.Is(err, authdomain.ErrIdentityNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Code:    "not_found",
			Message: "resource not found",
		}

	case errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, catalogdomain.ErrInvalidName),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, campaigndomain.ErrInvalidPlatform),
		errors.Is(err, campaigndomain.ErrEmptyContent),
		errors.Is(err, notificationdomain.ErrInvalidType),
		errors.Is(err, notificationdomain.ErrInvalidContent):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Code:    "invalid_request",
			Message: err.Error(),
		}

	case errors.Is(err, campaigndomain.ErrGeneration):
		// the provider's failure text travels to the client unmodified
		return http.StatusBadGateway, errorPayload{
			Type:    "generation_error",
			Code:    "generation_failed",
			Message: err.Error(),
		}

	case errors.Is(err, catalogdomain.ErrPersistence):
		return http.StatusInternalServerError, errorPayload{
			Type:    "persistence_error",
			Code:    "local_store_failure",
			Message: "local store operation failed",
		}

	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Code:    "internal",
			Message: "internal server error",
		}
	}
}

// classifyError feeds the request logger with a stable type and code.
func classifyError(err error) (string, string) {
	_, payload := mapError(err)
	return payload.Type, payload.Code
}

// ErrorHandlingMiddleware renders the last collected error when a handler
// has not written a response itself.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		lastErr := c.Errors.Last()
		if lastErr == nil || c.Writer.Written() {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.JSON(status, gin.H{"error": payload})
	}
}

func abortWithError(c *gin.Context, err error) {
	status, payload := mapError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": payload})
}

func abortBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errorPayload{
		Type:    "validation_error",
		Code:    "invalid_json",
		Message: "request body is not valid",
	}})
}
