// Package server provides the local HTTP editor API for CV Studio.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/schemas"
	"github.com/jonathan/cv-studio/internal/store"
)

// ErrSectionNotFound indicates the section id does not exist in the document
type ErrSectionNotFound struct {
	ID string
}

func (e *ErrSectionNotFound) Error() string {
	return fmt.Sprintf("section not found: %s", e.ID)
}

// ErrItemNotFound indicates the item id does not exist in the section
type ErrItemNotFound struct {
	SectionID string
	ItemID    string
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("item not found: %s in section %s", e.ItemID, e.SectionID)
}

// ErrConfirmRequired indicates a destructive operation needs explicit
// confirmation because the target still holds user content
type ErrConfirmRequired struct {
	Operation string
}

func (e *ErrConfirmRequired) Error() string {
	return fmt.Sprintf("operation %q would discard content; retry with confirm=true", e.Operation)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		missingKey *ai.MissingKeyError
		authErr    *ai.AuthError
		svcErr     *ai.ServiceError
		formatErr  *store.FormatError
		schemaErr  *schemas.ValidationError
	)

	switch {
	case errors.As(err, &missingKey), errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &svcErr):
		return http.StatusBadGateway
	case errors.As(err, &formatErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrSectionNotFound, *ErrItemNotFound:
		return http.StatusNotFound
	case *ErrConfirmRequired:
		return http.StatusConflict
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
