// Package server provides the HTTP REST API for the applicant ranker.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/honorsoc/applicant-ranker/internal/config"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

// AuthHandler handles reviewer authentication requests. Credentials come
// from the environment; there is no user store and no registration.
type AuthHandler struct {
	reviewer   *config.ReviewerConfig
	jwtService *JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(reviewer *config.ReviewerConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		reviewer:   reviewer,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Login handles reviewer login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := extractValidationErrors(err)
		http.Error(w, validationErrors, http.StatusBadRequest)
		return
	}

	if !h.reviewer.VerifyCredentials(req.Email, req.Password) {
		authErr := &ErrInvalidCredentials{}
		http.Error(w, authErr.Error(), HTTPStatus(authErr))
		return
	}

	token, err := h.jwtService.GenerateToken(req.Email)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := types.LoginResponse{
		Email: req.Email,
		Token: token,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
