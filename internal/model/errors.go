// Package model provides functionality to load and validate trained ranking model files.
package model

import "fmt"

// FormatError represents a malformed model document: unreadable file, JSON that
// fails the model schema, or a weight entry that is not a finite number.
type FormatError struct {
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model format error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model format error: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// VersionMismatchError signals that a model was trained against a different
// feature schema version than the extractor produces. Scoring with mismatched
// versions would silently misalign weights with features.
type VersionMismatchError struct {
	ModelVersion     int
	ExtractorVersion int
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("model feature_version %d does not match extractor feature version %d", e.ModelVersion, e.ExtractorVersion)
}
