package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Step names one stage of the enrichment pipeline.
type Step string

const (
	StepContentRetrieval Step = "CONTENT_RETRIEVAL"
	StepSummarization    Step = "SUMMARIZATION"
	StepMediaDetection   Step = "MEDIA_DETECTION"
	StepMediaDownload    Step = "MEDIA_DOWNLOAD"
	StepStorageUpload    Step = "STORAGE_UPLOAD"
	StepDatabaseUpdate   Step = "DATABASE_UPDATE"
)

// ErrorType classifies a step failure, orthogonal to the step itself.
type ErrorType string

const (
	ErrTypeNetwork            ErrorType = "NETWORK"
	ErrTypeTimeout            ErrorType = "TIMEOUT"
	ErrTypeRateLimited        ErrorType = "RATE_LIMITED"
	ErrTypeServiceUnavailable ErrorType = "SERVICE_UNAVAILABLE"
	ErrTypeDatabase           ErrorType = "DATABASE"
	ErrTypeInvalidInput       ErrorType = "INVALID_INPUT"
	ErrTypeNotFound           ErrorType = "NOT_FOUND"
	ErrTypeUnauthorized       ErrorType = "UNAUTHORIZED"
	ErrTypePayloadTooLarge    ErrorType = "PAYLOAD_TOO_LARGE"
	ErrTypeMalformedResponse  ErrorType = "MALFORMED_RESPONSE"
	ErrTypeInternal           ErrorType = "INTERNAL"
)

// Retryable reports whether re-attempting the same step is expected to succeed.
func (t ErrorType) Retryable() bool {
	switch t {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeRateLimited, ErrTypeServiceUnavailable, ErrTypeDatabase:
		return true
	}
	return false
}

// StepError is a classified failure of one pipeline step.
type StepError struct {
	Step    Step
	Type    ErrorType
	Message string
	cause   error
}

// NewStepError wraps cause as a classified failure of step.
func NewStepError(step Step, typ ErrorType, message string, cause error) *StepError {
	return &StepError{Step: step, Type: typ, Message: message, cause: cause}
}

func (e *StepError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Step, e.Type, e.Message, e.cause)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Step, e.Type, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.cause
}

// Retryable reports whether the error's classification allows a retry.
func (e *StepError) Retryable() bool {
	return e.Type.Retryable()
}

// ClassifyError turns an arbitrary step failure into a StepError. Errors
// already classified by a step client pass through unchanged; everything
// else gets a generic classification based on the error kind and the step.
func ClassifyError(step Step, err error) *StepError {
	var se *StepError
	if errors.As(err, &se) {
		return se
	}

	typ := ErrTypeInternal
	switch {
	case errors.Is(err, ErrStaleRun):
		typ = ErrTypeInternal
	case errors.Is(err, context.DeadlineExceeded):
		typ = ErrTypeTimeout
	case isNetError(err):
		typ = ErrTypeNetwork
	case step == StepDatabaseUpdate:
		typ = ErrTypeDatabase
	}

	return NewStepError(step, typ, err.Error(), err)
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

// WorkflowError is one structured, append-only failure event surfaced to
// the end user. RetryCount records how many attempts the step had made
// when the error became terminal.
type WorkflowError struct {
	Step       Step      `json:"step"`
	Type       ErrorType `json:"errorType"`
	Message    string    `json:"message"`
	Guidance   string    `json:"guidance"`
	Retryable  bool      `json:"retryable"`
	OccurredAt time.Time `json:"occurredAt"`
	RetryCount int       `json:"retryCount"`
}

// NewWorkflowError builds the user-facing record for a terminal step failure.
func NewWorkflowError(err *StepError, retryCount int) WorkflowError {
	return WorkflowError{
		Step:       err.Step,
		Type:       err.Type,
		Message:    err.Message,
		Guidance:   GuidanceFor(err.Step, err.Type),
		Retryable:  err.Retryable(),
		OccurredAt: time.Now().UTC(),
		RetryCount: retryCount,
	}
}
