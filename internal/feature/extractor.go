// Package feature assembles applicant inputs into versioned feature vectors.
package feature

import (
	"math"
	"strings"

	"github.com/honorsoc/applicant-ranker/internal/academic"
	"github.com/honorsoc/applicant-ranker/internal/curve"
	"github.com/honorsoc/applicant-ranker/internal/essay"
	"github.com/honorsoc/applicant-ranker/internal/lexicon"
	"github.com/honorsoc/applicant-ranker/internal/penalty"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

// FeatureVersion identifies the ordered set and semantics of the features
// below. A trained weight vector is only valid against the version it was
// trained on.
const FeatureVersion = 2

// FeatureCount is the fixed length of every assembled vector.
const FeatureCount = 21

// Resume length curve: normalized characters per unit, and the saturation
// rate applied to units.
const (
	resumeLenUnit = 100.0
	resumeLenRate = 0.12
)

// featureNames lists the features of schema version 2 in vector order.
var featureNames = [FeatureCount]string{
	"gpa_score_0_10",
	"calc_score_0_10",
	"upper_math_score_0_10",
	"resume_len_score_0_10",
	"kw_math_core",
	"kw_leadership_service",
	"kw_awards_honors",
	"kw_research_inquiry",
	"kw_community_engagement",
	"personal_sentence_score_0_10",
	"personal_arc_score_0_10",
	"personal_math_term_score_0_10",
	"personal_reasoning_score_0_10",
	"plan_sentence_score_0_10",
	"plan_specificity_score_0_10",
	"plan_math_term_score_0_10",
	"plan_reasoning_score_0_10",
	"resume_math_term_score_0_10",
	"resume_reasoning_score_0_10",
	"category_breadth_score_0_10",
	"density_penalty_0_10",
}

// surveyRates are the saturation rates for the five kw_* survey features,
// keyed by lexicon category.
var surveyRates = map[string]float64{
	lexicon.MathCore:            0.40,
	lexicon.LeadershipService:   0.50,
	lexicon.AwardsHonors:        0.55,
	lexicon.ResearchInquiry:     0.55,
	lexicon.CommunityEngagement: 0.50,
}

// Vector is an assembled feature vector: exactly FeatureCount entries in
// [0,10] at 6-decimal precision, tagged with the schema version. Immutable
// once built; accessors return copies.
type Vector struct {
	values []float64
}

// Values returns a copy of the feature values in schema order.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Len returns the number of features.
func (v *Vector) Len() int {
	return len(v.values)
}

// At returns the feature value at index i.
func (v *Vector) At(i int) float64 {
	return v.values[i]
}

// Version returns the feature schema version the vector was built under.
func (v *Vector) Version() int {
	return FeatureVersion
}

// Extractor builds feature vectors from applicant inputs. It is stateless
// and safe to share; callers receive it explicitly rather than through
// package globals.
type Extractor struct{}

// NewExtractor returns a feature extractor for the current schema version.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Version returns the feature schema version this extractor produces.
func (e *Extractor) Version() int {
	return FeatureVersion
}

// FeatureNames returns a copy of the feature names in vector order.
func (e *Extractor) FeatureNames() []string {
	out := make([]string, FeatureCount)
	copy(out, featureNames[:])
	return out
}

// NameAt returns the feature name at index i.
func (e *Extractor) NameAt(i int) string {
	return featureNames[i]
}

// BuildFeatures assembles the full feature vector for one applicant.
// Required academic fields are checked first and abort extraction with an
// InputValidationError; free-text fields may be empty. The result is
// deterministic: identical input yields a byte-identical vector.
func (e *Extractor) BuildFeatures(input *types.ApplicantInput) (*Vector, error) {
	if err := checkRequired(input); err != nil {
		return nil, err
	}

	resume := lexicon.Normalize(input.ResumeText)
	personal := lexicon.Normalize(input.PersonalEssayText)
	plan := lexicon.Normalize(input.PlanEssayText)
	combined := joinNonEmpty(resume, personal, plan)

	values := make([]float64, 0, FeatureCount)

	// Academic block
	values = append(values, academic.ScoreGPA(*input.GPA))
	values = append(values, academic.ScoreCalc(types.ParseCalcAnswer(input.CalcVal)))
	values = append(values, scoreUpper(input))

	// Resume volume
	units := float64(len(resume)) / resumeLenUnit
	values = append(values, 10.0*curve.SatExp(units, resumeLenRate))

	// Keyword survey over the combined text
	for _, category := range lexicon.SurveyCategories() {
		hits := float64(lexicon.MustGet(category).UniqueHits(combined))
		values = append(values, 10.0*curve.SatExp(hits, surveyRates[category]))
	}

	// Personal essay block
	values = append(values, essay.SentenceBandScore(personal))
	values = append(values, essay.ArcScore(personal))
	values = append(values, essay.MathTermScore(personal))
	values = append(values, essay.ReasoningMarkerScore(personal))

	// Plan essay block
	values = append(values, essay.SentenceBandScore(plan))
	values = append(values, essay.PlanSpecificityScore(plan))
	values = append(values, essay.MathTermScore(plan))
	values = append(values, essay.ReasoningMarkerScore(plan))

	// Resume text block
	values = append(values, essay.MathTermScore(resume))
	values = append(values, essay.ReasoningMarkerScore(resume))

	// Cross-category breadth and the anti-gaming penalty
	values = append(values, breadthScore(combined))
	values = append(values, penalty.DensityPenalty(combined))

	if len(values) != FeatureCount {
		return nil, &SchemaInvariantError{Expected: FeatureCount, Actual: len(values)}
	}

	for i, v := range values {
		values[i] = curve.Round6(curve.Clamp(v, 0, 10))
	}

	return &Vector{values: values}, nil
}

// checkRequired validates the academic fields extraction cannot proceed
// without.
func checkRequired(input *types.ApplicantInput) error {
	if input == nil {
		return &InputValidationError{Field: "input", Message: "applicant input is required"}
	}
	if input.GPA == nil {
		return &InputValidationError{Field: "gpa", Message: "value is required"}
	}
	if math.IsNaN(*input.GPA) || math.IsInf(*input.GPA, 0) {
		return &InputValidationError{Field: "gpa", Message: "value must be finite"}
	}
	if strings.TrimSpace(input.CalcVal) == "" {
		return &InputValidationError{Field: "calcVal", Message: "value is required"}
	}
	return nil
}

// scoreUpper picks the course-list scorer when courses are present, falling
// back to the legacy count-plus-rigor scorer otherwise.
func scoreUpper(input *types.ApplicantInput) float64 {
	if len(input.Courses) > 0 {
		return academic.ScoreUpperFromCourses(input.Courses)
	}
	return academic.ScoreUpperLegacy(input.UpperCount, types.ParseRigorTier(input.UpperRigor))
}

// breadthScore scores how many of the survey categories appear at all in
// the combined text, as a fraction of the category count.
func breadthScore(combined string) float64 {
	categories := lexicon.SurveyCategories()

	matched := 0
	for _, category := range categories {
		if lexicon.MustGet(category).UniqueHits(combined) > 0 {
			matched++
		}
	}

	return 10.0 * float64(matched) / float64(len(categories))
}

// joinNonEmpty joins already-normalized fragments with single spaces,
// skipping empties.
func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
