package server

import "github.com/google/uuid"

// FrequencyRequest is the body of POST /rest/word-count/highest-frequency.
// Text is a pointer so an absent text can be told apart from an empty one.
type FrequencyRequest struct {
	Text *string `json:"text" validate:"required"`
}

// WordFrequencyRequest is the body of POST /rest/word-count/frequency-for-word.
type WordFrequencyRequest struct {
	Text *string `json:"text" validate:"required"`
	Word *string `json:"word" validate:"required"`
}

// TopFrequencyRequest is the body of POST /rest/word-count/top-frequency.
type TopFrequencyRequest struct {
	Text *string `json:"text" validate:"required"`
	N    int     `json:"n" validate:"min=1"`
}

// FrequencyResponse carries a single frequency.
type FrequencyResponse struct {
	Frequency int `json:"frequency"`
}

// WordFrequencyResponse carries a word and its frequency.
type WordFrequencyResponse struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// ErrorResponse is the envelope for every failed request. Reference is
// generated per failure and is also written to the log.
type ErrorResponse struct {
	Reason    string    `json:"reason"`
	Reference uuid.UUID `json:"reference"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
