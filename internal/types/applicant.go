// Package types provides type definitions for structured data used throughout the applicant-ranker system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ApplicantInput represents one applicant's submission as received from the
// admissions form: structured academic fields plus three free-text slots.
type ApplicantInput struct {
	GPA               *float64 `json:"gpa" validate:"required"`
	CalcVal           string   `json:"calcVal" validate:"required"`
	Courses           []string `json:"courses,omitempty" validate:"max=6,dive,min=1"`
	UpperCount        int      `json:"upperCount,omitempty" validate:"min=0"`
	UpperRigor        string   `json:"upperRigor,omitempty"`
	ResumeText        string   `json:"resumeText,omitempty"`
	PersonalEssayText string   `json:"personalEssayText,omitempty"`
	PlanEssayText     string   `json:"planEssayText,omitempty"`
}

// ApplicantRecord wraps an ApplicantInput with a stable ID and free-form
// metadata (name, school, email) carried through batch ranking untouched.
type ApplicantRecord struct {
	ID        string            `json:"id,omitempty"`
	Applicant ApplicantInput    `json:"applicant"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// ScoreResult represents one scoring outcome: the raw linear score and the
// rank-normalized displayed score in [0,10] at 1 decimal.
type ScoreResult struct {
	RawScore float64 `json:"raw_score"`
	Score    float64 `json:"score_0_10"`
}

// RankedApplicant represents one applicant's position after batch ranking.
type RankedApplicant struct {
	ID       string            `json:"id"`
	Rank     int               `json:"rank"`
	RawScore float64           `json:"raw_score"`
	Score    float64           `json:"score_0_10"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// Validate validates the ApplicantInput using the validator.
func (a *ApplicantInput) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// Validate validates the ApplicantRecord using the validator.
func (r *ApplicantRecord) Validate() error {
	if err := r.Applicant.Validate(); err != nil {
		return err
	}
	return nil
}
