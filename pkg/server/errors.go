package server

import (
	"errors"
	"net/http"

	"github.com/bastiangx/wordfreq/pkg/analyzer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestError wraps a body that could not be decoded.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "Malformed request body: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// classify maps an error to the HTTP status and the metrics kind label.
func classify(err error) (int, string) {
	var validationErr *ValidationError
	var maxBytesErr *http.MaxBytesError
	var requestErr *RequestError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, analyzer.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, analyzer.ErrInvalidWord):
		return http.StatusBadRequest, "invalid_word"
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, "body_too_large"
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, "malformed_request"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// fail writes the error envelope and aborts the handler chain.
func (s *Server) fail(c *gin.Context, err error) {
	status, kind := classify(err)
	ref := uuid.New()

	s.log.Error("request failed",
		"path", c.Request.URL.Path,
		"status", status,
		"kind", kind,
		"reference", ref,
		"err", err)
	s.metrics.ObserveError("http", kind)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Reason:    err.Error(),
		Reference: ref,
	})
}
