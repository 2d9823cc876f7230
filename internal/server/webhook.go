package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleMollieWebhook takes the status-change notification. Mollie posts a
// single form field: the order id. Everything else is fetched fresh from
// the API, so the payload is never trusted beyond the id.
func (s *Server) HandleMollieWebhook(c *gin.Context) {
	orderID := strings.TrimSpace(c.PostForm("id"))
	if orderID == "" {
		orderID = strings.TrimSpace(c.Query("id"))
	}
	if orderID == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	outcome, err := s.reconcileSvc.Reconcile(c.Request.Context(), orderID)
	if err != nil {
		s.metrics.Failures.WithLabelValues(failureReason(err)).Inc()
		s.log.Warn("reconciliation failed",
			zap.String("mollie_order_id", orderID),
			zap.Error(err),
		)
		AbortWithError(c, err)
		return
	}

	s.metrics.Reconciliations.WithLabelValues(string(outcome)).Inc()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "outcome": string(outcome)})
}

func (s *Server) HandleCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.cfg.AppName,
		"version": s.cfg.AppVersion,
	})
}

func failureReason(err error) string {
	status, payload := mapError(err)
	if status == http.StatusInternalServerError {
		return "internal"
	}
	return payload.Type
}
