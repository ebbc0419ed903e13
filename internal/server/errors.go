// Package server provides the HTTP REST API for the applicant ranker.
package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/honorsoc/applicant-ranker/internal/feature"
	"github.com/honorsoc/applicant-ranker/internal/model"
	"github.com/honorsoc/applicant-ranker/internal/schemas"
	"github.com/honorsoc/applicant-ranker/internal/scoring"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrModelNotLoaded indicates the server was started without a ranking model
type ErrModelNotLoaded struct{}

func (e *ErrModelNotLoaded) Error() string {
	return "no ranking model loaded"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrModelNotLoaded:
		return http.StatusNotFound
	case *feature.InputValidationError:
		return http.StatusBadRequest
	case validator.ValidationErrors:
		return http.StatusBadRequest
	case *schemas.ValidationError:
		return http.StatusBadRequest
	case *model.FormatError:
		return http.StatusBadRequest
	case *model.VersionMismatchError:
		return http.StatusUnprocessableEntity
	case *scoring.DimensionMismatchError:
		return http.StatusUnprocessableEntity
	case *feature.SchemaInvariantError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
