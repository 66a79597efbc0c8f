package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("race"), ErrorTypeConflict, http.StatusConflict},
		{"bad request", NewBadRequestError("body"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"storage", NewStorageError("save", errors.New("db down")), ErrorTypeStorage, http.StatusInternalServerError},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantCode < 500, tt.err.Exposed())
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "validation_error: bad", NewValidationError("bad").Error())
	assert.Equal(t, "not_found: missing (ticket 7)", NewNotFoundError("missing", "ticket 7").Error())
}

func TestStorageError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("saving: %w", NewStorageError("failed to save ticket", cause))

	assert.True(t, IsStorageError(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsNotFoundError(err))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.True(t, IsValidationError(NewValidationError("x")))
	assert.True(t, IsConflictError(NewConflictError("x")))
	assert.False(t, IsAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(errors.New("plain")))
}
