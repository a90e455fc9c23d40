package model

// Status describes the lifecycle state of a provider or of one dispatch
// outcome. The set is closed; the router and workflow executor only ever
// branch on StatusCompleted and StatusError.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
	StatusWaiting    Status = "waiting"
)

// String returns the serialised form of the status.
func (s Status) String() string { return string(s) }

// Error-type classification strings recorded under MetadataErrorType when a
// dispatch fails. Callers inspect these rather than parsing error messages.
const (
	ErrorTypeValidation          = "validation_error"
	ErrorTypeUnknownOperation    = "unknown_operation"
	ErrorTypeProviderUnavailable = "provider_unavailable"
	ErrorTypeCapabilityMismatch  = "capability_mismatch"
	ErrorTypeProviderExecution   = "provider_execution_error"
	ErrorTypeProviderPanic       = "provider_panic"
)

// MetadataErrorType is the Outcome.Metadata key holding the error
// classification of a failed dispatch.
const MetadataErrorType = "errorType"
