package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bastiangx/wordfreq/pkg/analyzer"
	"github.com/gin-gonic/gin"
)

// bind decodes the JSON body into req and validates it. On failure the error
// response is already written and false is returned.
func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.fail(c, err)
			return false
		}
		s.fail(c, &RequestError{Err: err})
		return false
	}
	if err := validateRequest(req); err != nil {
		s.fail(c, err)
		return false
	}
	return true
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleHighestFrequency returns the highest frequency of any single word.
func (s *Server) handleHighestFrequency(c *gin.Context) {
	var req FrequencyRequest
	if !s.bind(c, &req) {
		return
	}
	s.metrics.ObserveText(len(*req.Text))

	freq, err := s.analyzer.HighestFrequency(req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, FrequencyResponse{Frequency: freq})
}

// handleFrequencyForWord returns how often the requested word occurs.
func (s *Server) handleFrequencyForWord(c *gin.Context) {
	var req WordFrequencyRequest
	if !s.bind(c, &req) {
		return
	}
	s.metrics.ObserveText(len(*req.Text))

	freq, err := s.analyzer.FrequencyForWord(req.Text, *req.Word)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, WordFrequencyResponse{
		Word:      strings.ToLower(*req.Word),
		Frequency: freq,
	})
}

// handleTopFrequency returns the n most frequent words.
func (s *Server) handleTopFrequency(c *gin.Context) {
	var req TopFrequencyRequest
	if !s.bind(c, &req) {
		return
	}
	s.metrics.ObserveText(len(*req.Text))

	top, err := s.analyzer.MostFrequentNWords(req.Text, req.N)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(top))
}

func toResponses(frequencies []analyzer.WordFrequency) []WordFrequencyResponse {
	out := make([]WordFrequencyResponse, len(frequencies))
	for i, wf := range frequencies {
		out[i] = WordFrequencyResponse{Word: wf.Word(), Frequency: wf.Frequency()}
	}
	return out
}
