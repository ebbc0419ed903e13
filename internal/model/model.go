// Package model provides functionality to load and validate trained ranking model files.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/honorsoc/applicant-ranker/internal/schemas"
	schemadocs "github.com/honorsoc/applicant-ranker/schemas"
)

// RankingModel holds the weights of a trained linear ranker. Fields are
// unexported and accessors return copies: a loaded model is immutable and safe
// to share across goroutines.
type RankingModel struct {
	weights        []float64
	bias           float64
	featureVersion int
	hasVersion     bool
}

// rawModel mirrors the trainer's JSON output. Weights and bias are decoded
// loosely because spreadsheet exports sometimes stringify numbers.
type rawModel struct {
	FeatureVersion *int  `json:"feature_version"`
	Dim            *int  `json:"dim"`
	Weights        []any `json:"weights"`
	Bias           any   `json:"bias"`
}

// Load parses and validates a model document. extractorVersion is the feature
// schema version of the extractor that will feed this model; pass 0 when it is
// unknown. When both the document and the extractor declare a version they
// must agree, otherwise loading fails with a VersionMismatchError.
func Load(data []byte, extractorVersion int) (*RankingModel, error) {
	if err := schemas.ValidateJSONBytes(schemadocs.RankModel(), data); err != nil {
		return nil, &FormatError{
			Message: "model document failed schema validation",
			Cause:   err,
		}
	}

	var raw rawModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{
			Message: "failed to unmarshal model JSON",
			Cause:   err,
		}
	}

	weights := make([]float64, len(raw.Weights))
	for i, entry := range raw.Weights {
		w, err := toFiniteFloat(entry)
		if err != nil {
			return nil, &FormatError{
				Message: fmt.Sprintf("weight %d is not a finite number", i),
				Cause:   err,
			}
		}
		weights[i] = w
	}

	if raw.Dim != nil && *raw.Dim != len(weights) {
		return nil, &FormatError{
			Message: fmt.Sprintf("dim %d does not match %d weights", *raw.Dim, len(weights)),
		}
	}

	// Bias is optional and lenient: anything that does not parse as a finite
	// number falls back to 0.
	bias := 0.0
	if b, err := toFiniteFloat(raw.Bias); err == nil {
		bias = b
	}

	m := &RankingModel{
		weights: weights,
		bias:    bias,
	}
	if raw.FeatureVersion != nil {
		m.featureVersion = *raw.FeatureVersion
		m.hasVersion = true
		if extractorVersion > 0 && m.featureVersion != extractorVersion {
			return nil, &VersionMismatchError{
				ModelVersion:     m.featureVersion,
				ExtractorVersion: extractorVersion,
			}
		}
	}

	return m, nil
}

// LoadFile reads a model file from disk and loads it via Load.
func LoadFile(path string, extractorVersion int) (*RankingModel, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{
			Message: fmt.Sprintf("failed to read model file %s", path),
			Cause:   err,
		}
	}
	return Load(content, extractorVersion)
}

// Weights returns a copy of the weight vector.
func (m *RankingModel) Weights() []float64 {
	out := make([]float64, len(m.weights))
	copy(out, m.weights)
	return out
}

// Bias returns the additive bias term.
func (m *RankingModel) Bias() float64 {
	return m.bias
}

// FeatureVersion returns the feature schema version the model was trained
// against, and whether the document declared one.
func (m *RankingModel) FeatureVersion() (int, bool) {
	return m.featureVersion, m.hasVersion
}

// Dim returns the number of weights.
func (m *RankingModel) Dim() int {
	return len(m.weights)
}

// toFiniteFloat converts a decoded JSON value to a finite float64. Numeric
// strings are accepted; NaN and infinities are rejected in either form.
func toFiniteFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("value %v is not finite", val)
		}
		return val, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a number: %w", val, err)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, fmt.Errorf("value %q is not finite", val)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}
