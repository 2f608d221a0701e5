package entity

import "errors"

// Domain errors
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrWrongPhase      = errors.New("action not allowed in current phase")
	ErrNoReport        = errors.New("analysis report not available")
	ErrReportExists    = errors.New("analysis report already generated")
	ErrTooManyFollowUps = errors.New("follow-up limit reached")
	ErrTurnNotFound     = errors.New("follow-up turn not found")

	// Validation errors
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidTask   = errors.New("unknown analysis task")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidFormat = errors.New("invalid format")

	// LLM errors
	ErrGenerationFailed  = errors.New("text generation failed")
	ErrMalformedResponse = errors.New("malformed model response")
)
