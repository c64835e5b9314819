package server

import "github.com/gin-gonic/gin"

// Routes served by the HTTP boundary.
const (
	BasePath             = "/rest/word-count"
	HighestFrequencyPath = BasePath + "/highest-frequency"
	FrequencyForWordPath = BasePath + "/frequency-for-word"
	TopFrequencyPath     = BasePath + "/top-frequency"
	HealthPath           = "/health"
	MetricsPath          = "/metrics"
)

func (s *Server) setupRoutes() {
	s.engine.GET(HealthPath, s.handleHealth)
	if s.cfg.EnableMetrics && s.metrics != nil {
		s.engine.GET(MetricsPath, gin.WrapH(s.metrics.Handler()))
	}

	wordCount := s.engine.Group(BasePath)
	{
		wordCount.POST("/highest-frequency", s.handleHighestFrequency)
		wordCount.POST("/frequency-for-word", s.handleFrequencyForWord)
		wordCount.POST("/top-frequency", s.handleTopFrequency)
	}
}
