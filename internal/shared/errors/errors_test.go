package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_TypesAndCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("clash"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("who are you"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{"workflow violation", NewWorkflowViolationError("not now"), ErrorTypeWorkflowViolation, http.StatusConflict},
		{"invariant violation", NewInvariantViolationError("duplicate"), ErrorTypeInvariantViolation, http.StatusConflict},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "forbidden: no", NewForbiddenError("no").Error())
	assert.Equal(t, "forbidden: no (not_owner)", NewForbiddenError("no", "not_owner").Error())
}

func TestIsHelpers_DistinguishDenialKinds(t *testing.T) {
	forbidden := NewForbiddenError("never allowed")
	workflow := NewWorkflowViolationError("not in this status")

	assert.True(t, IsForbiddenError(forbidden))
	assert.False(t, IsWorkflowViolationError(forbidden))

	assert.True(t, IsWorkflowViolationError(workflow))
	assert.False(t, IsForbiddenError(workflow))
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("use case failed: %w", NewNotFoundError("expense 7 not found"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsNotFoundError(wrapped))

	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, "expense 7 not found", appErr.Message)

	assert.False(t, IsAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry '3' for key 'idx_commission_revenue'")))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: commission_records.revenue_id")))
	assert.True(t, IsDuplicateError(errors.New("pq: duplicate key value violates unique constraint")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
