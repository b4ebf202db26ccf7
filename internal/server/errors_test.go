package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/store"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing key", &ai.MissingKeyError{}, http.StatusUnauthorized},
		{"auth failure", &ai.AuthError{Message: "bad key"}, http.StatusUnauthorized},
		{"service failure", &ai.ServiceError{StatusCode: 503}, http.StatusBadGateway},
		{"format error", &store.FormatError{Message: "not an object"}, http.StatusBadRequest},
		{"section not found", &ErrSectionNotFound{ID: "abc"}, http.StatusNotFound},
		{"item not found", &ErrItemNotFound{SectionID: "abc", ItemID: "def"}, http.StatusNotFound},
		{"confirm required", &ErrConfirmRequired{Operation: "delete section"}, http.StatusConflict},
		{"validation", &ErrValidation{Field: "type", Message: "bad"}, http.StatusBadRequest},
		{"wrapped auth failure", fmt.Errorf("enhance: %w", &ai.AuthError{Message: "expired"}), http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrSectionNotFound{ID: "abc"}).Error(), "abc")
	assert.Contains(t, (&ErrConfirmRequired{Operation: "change section type"}).Error(), "confirm=true")
	assert.Contains(t, (&ErrItemNotFound{SectionID: "s1", ItemID: "i1"}).Error(), "i1")
}
