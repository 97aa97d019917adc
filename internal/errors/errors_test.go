package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", Validation("name is required"), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create tag: %w", Validation("name is required")), http.StatusBadRequest},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"carousel limit", fmt.Errorf("toggle: %w", ErrCarouselLimit), http.StatusBadRequest},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"engine error", errors.New("UNIQUE constraint failed: tags.name"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.err))
		})
	}
}

func TestMapErrorToHTTP_KeepsEngineMessage(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("UNIQUE constraint failed: users.username"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "UNIQUE constraint failed: users.username", httpErr.Message)
	assert.Equal(t, ErrorResponse{Error: httpErr.Message, Code: CodeInternal}, httpErr.ToErrorResponse())
}
