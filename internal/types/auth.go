// Package types provides type definitions for structured data used throughout the applicant-ranker system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents a reviewer login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login response with the issued token.
type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
