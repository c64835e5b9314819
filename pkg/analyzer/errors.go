package analyzer

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these to classify an analysis failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidWord  = errors.New("invalid word")
)

const nullTextMessage = "Input text is null. Null texts cannot be analyzed."

// AnalysisError is returned when a precondition of an analysis call is violated.
// Message is what callers should show to clients; Kind is one of the Err* values.
type AnalysisError struct {
	Kind    error
	Message string
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Kind
}

func invalidInput() error {
	return &AnalysisError{Kind: ErrInvalidInput, Message: nullTextMessage}
}

func invalidWord(word string) error {
	return &AnalysisError{
		Kind:    ErrInvalidWord,
		Message: fmt.Sprintf("Word %s doesn't contain the required letters (a-z or A-Z).", word),
	}
}
