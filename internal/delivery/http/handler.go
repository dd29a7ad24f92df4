package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wraplens/backend/internal/domain"
)

// ExtractionService is the usecase surface the handlers need
type ExtractionService interface {
	ExtractProduct(ctx context.Context, request *domain.ExtractRequest) (*domain.ExtractResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extraction ExtractionService
}

// NewHandler creates a new HTTP handler
func NewHandler(extraction ExtractionService) *Handler {
	return &Handler{extraction: extraction}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wraplens-backend",
		"version": "1.0.0",
	})
}

// ExtractProduct handles product extraction requests
func (h *Handler) ExtractProduct(c *gin.Context) {
	if h.extraction == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "extraction service not configured"})
		return
	}

	var request domain.ExtractRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.extraction.ExtractProduct(c.Request.Context(), &request)
	if err != nil {
		status, message := mapError(err)
		c.JSON(status, gin.H{"error": message, "retryable": errors.Is(err, domain.ErrCompletionTimeout)})
		return
	}

	c.JSON(http.StatusOK, result)
}

// mapError translates pipeline errors to HTTP responses. Completion timeouts
// get their own status because the caller may want to retry them.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "provide at least one of url, asin or html"
	case errors.Is(err, domain.ErrCompletionTimeout):
		return http.StatusGatewayTimeout, err.Error()
	case errors.Is(err, domain.ErrBlocked),
		errors.Is(err, domain.ErrNoJSONFound),
		errors.Is(err, domain.ErrMalformedJSON),
		errors.Is(err, domain.ErrPageFetchFailed):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
