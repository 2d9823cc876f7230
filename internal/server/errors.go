package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janmense/mollie-plentymarkets-ceres/internal/mollie"
	reconciledomain "github.com/janmense/mollie-plentymarkets-ceres/internal/reconcile/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInternal       = errors.New("internal_error")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// mapError decides retry behavior: 502 tells Mollie to redeliver the
// notification, 409 marks a conflict operators must resolve, 404 lets a
// stale notification die quietly.
func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: "invalid request"}
	case errors.Is(err, mollie.ErrOrderNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: "unknown mollie order"}
	case errors.Is(err, mollie.ErrUpstreamUnavailable):
		return http.StatusBadGateway, errorPayload{Type: "upstream_unavailable", Message: "mollie api unavailable"}
	case errors.Is(err, reconciledomain.ErrOrderMismatch):
		return http.StatusConflict, errorPayload{Type: "order_mismatch", Message: "order reference mismatch"}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal error"}
	}
}
