// Package roster provides functionality to read and write applicant record files.
package roster

import "fmt"

// LoadError represents an error reading or decoding a roster file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("roster load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("roster load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
