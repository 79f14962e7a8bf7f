package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/nexcubelabs/nexcube/internal/auth/domain"
)

type apiError struct {
	status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Code }

func newAPIError(status int, code, message string) *apiError {
	return &apiError{status: status, Code: code, Message: message}
}

func invalidRequestError() *apiError {
	return newAPIError(http.StatusBadRequest, "invalid_request", "request body could not be parsed")
}

func rateLimitedError() *apiError {
	return newAPIError(http.StatusTooManyRequests, "rate_limited", "too many requests, try again later")
}

// AbortWithError translates service errors into the JSON error envelope.
// Domain sentinels carry their HTTP class in their name: invalid_* is a bad
// request, not_found is 404, and the auth sentinels map to 401.
func AbortWithError(c *gin.Context, err error) {
	var api *apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.status, gin.H{"error": api})
		return
	}

	code := err.Error()
	switch {
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		api = newAPIError(http.StatusUnauthorized, code, "email or password is incorrect")
	case errors.Is(err, authdomain.ErrUnauthorized):
		api = newAPIError(http.StatusUnauthorized, code, "authentication required")
	case code == "not_found":
		api = newAPIError(http.StatusNotFound, code, "resource not found")
	case strings.HasPrefix(code, "invalid_"):
		api = newAPIError(http.StatusBadRequest, code, strings.ReplaceAll(code, "_", " "))
	default:
		_ = c.Error(err)
		api = newAPIError(http.StatusInternalServerError, "internal_error", "internal server error")
	}
	c.AbortWithStatusJSON(api.status, gin.H{"error": api})
}
