package model

import "time"

// Outcome is the normalized result of attempting to execute one envelope. It
// is created once per dispatch attempt and is immutable after the router
// returns it. StatusError implies a non-empty Error; StatusCompleted is the
// only status whose Result feeds the next workflow step.
type Outcome struct {
	Producer          string         `json:"producer"`
	Status            Status         `json:"status"`
	Result            map[string]any `json:"result,omitempty"`
	Error             string         `json:"error,omitempty"`
	ExecutionDuration time.Duration  `json:"executionDuration"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	NextActions       []string       `json:"nextActions,omitempty"`
}

// NewCompletedOutcome creates a successful outcome carrying the given result.
func NewCompletedOutcome(producer string, result map[string]any) *Outcome {
	return &Outcome{
		Producer: producer,
		Status:   StatusCompleted,
		Result:   result,
	}
}

// NewErrorOutcome creates a failed outcome with the supplied error
// classification recorded in its metadata.
func NewErrorOutcome(producer, errorType, message string) *Outcome {
	return &Outcome{
		Producer: producer,
		Status:   StatusError,
		Error:    message,
		Metadata: map[string]any{MetadataErrorType: errorType},
	}
}

// IsError reports whether the dispatch failed.
func (o *Outcome) IsError() bool { return o.Status == StatusError }

// IsCompleted reports whether the dispatch completed successfully.
func (o *Outcome) IsCompleted() bool { return o.Status == StatusCompleted }

// ErrorType returns the error classification recorded in the metadata, or an
// empty string for successful outcomes.
func (o *Outcome) ErrorType() string {
	if o.Metadata == nil {
		return ""
	}
	kind, _ := o.Metadata[MetadataErrorType].(string)
	return kind
}
