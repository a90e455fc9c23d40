package types

import "fmt"

func NewUnknownOperationError(operation string) error {
	return fmt.Errorf("no provider for operation: %v", operation)
}

func NewProviderUnavailableError(name string) error {
	return fmt.Errorf("target provider not available: %v", name)
}

func NewCapabilityMismatchError(name, operation string) error {
	return fmt.Errorf("provider %v cannot handle operation: %v", name, operation)
}

func NewInvalidInputError(operation string) error {
	return fmt.Errorf("invalid input for operation: %v", operation)
}
