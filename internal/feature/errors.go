// Package feature assembles applicant inputs into versioned feature vectors.
package feature

import "fmt"

// InputValidationError represents a missing or invalid required academic
// field. Extraction aborts; no partial vector is produced.
type InputValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InputValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid applicant input: %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid applicant input: %s: %s", e.Field, e.Message)
}

func (e *InputValidationError) Unwrap() error {
	return e.Cause
}

// SchemaInvariantError signals an assembled vector whose length does not
// match the feature schema. It indicates a defect in the extractor itself,
// never a bad input.
type SchemaInvariantError struct {
	Expected int
	Actual   int
}

func (e *SchemaInvariantError) Error() string {
	return fmt.Sprintf("feature schema invariant violated: expected %d features, assembled %d", e.Expected, e.Actual)
}
