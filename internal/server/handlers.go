// Package server provides the HTTP REST API for the applicant ranker.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/honorsoc/applicant-ranker/internal/scoring"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

// ---------------------------------------------------------------------
// Scoring Handlers
// ---------------------------------------------------------------------

type scoreRequest struct {
	Applicant types.ApplicantInput `json:"applicant"`
}

type featuresResponse struct {
	Features       []float64 `json:"features"`
	FeatureVersion int       `json:"feature_version"`
}

type scoreResponse struct {
	Features       []float64 `json:"features"`
	RawScore       float64   `json:"raw_score"`
	Score          float64   `json:"score_0_10"`
	FeatureVersion int       `json:"feature_version"`
}

type modelResponse struct {
	Loaded         bool    `json:"loaded"`
	Dim            int     `json:"dim"`
	Bias           float64 `json:"bias"`
	FeatureVersion *int    `json:"feature_version,omitempty"`
}

// handleFeatures extracts the feature vector for one applicant without
// scoring it. No model is required.
func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Applicant.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	vec, err := s.extractor.BuildFeatures(&req.Applicant)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, featuresResponse{
		Features:       vec.Values(),
		FeatureVersion: vec.Version(),
	})
}

// handleScore extracts features and scores them against the loaded model.
// The displayed score is ranked against the startup pool when one was
// loaded; without a pool the percentile defaults apply.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if s.model == nil {
		err := &ErrModelNotLoaded{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Applicant.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	vec, err := s.extractor.BuildFeatures(&req.Applicant)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := scoring.ScoreWithPool(s.model, vec.Values(), s.pool)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponse{
		Features:       vec.Values(),
		RawScore:       result.RawScore,
		Score:          result.Score,
		FeatureVersion: vec.Version(),
	})
}

// handleModel reports the loaded model's shape. When the server was started
// without a model it answers loaded=false instead of an error.
func (s *Server) handleModel(w http.ResponseWriter, _ *http.Request) {
	if s.model == nil {
		s.jsonResponse(w, http.StatusOK, map[string]bool{"loaded": false})
		return
	}

	resp := modelResponse{
		Loaded: true,
		Dim:    s.model.Dim(),
		Bias:   s.model.Bias(),
	}
	if v, ok := s.model.FeatureVersion(); ok {
		resp.FeatureVersion = &v
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
