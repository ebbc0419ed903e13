// Package schemas ships the JSON Schema documents for the data artifacts
// this system consumes, embedded at compile time.
package schemas

import (
	_ "embed"
)

//go:embed rank_model.schema.json
var rankModelSchema []byte

//go:embed applicant.schema.json
var applicantSchema []byte

// RankModel returns the schema for trained ranking model files.
func RankModel() []byte {
	return clone(rankModelSchema)
}

// Applicant returns the schema for applicant record documents.
func Applicant() []byte {
	return clone(applicantSchema)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
