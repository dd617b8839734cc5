package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexconnect/internal/domain"
	"lexconnect/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},
		{domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{domain.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{domain.ErrPreconditionFailed, http.StatusConflict, "PRECONDITION_FAILED"},
		{domain.ErrConsentRequired, http.StatusBadRequest, "CONSENT_REQUIRED"},
		{domain.ErrUnknownParticipant, http.StatusBadRequest, "UNKNOWN_PARTICIPANT"},
		{domain.ErrUnknownSubtype, http.StatusBadRequest, "UNKNOWN_SUBTYPE"},
		{fmt.Errorf("database exploded"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		status, code, _ := handler.MapDomainError(tt.err)
		assert.Equal(t, tt.wantStatus, status, "status for %v", tt.err)
		assert.Equal(t, tt.wantCode, code, "code for %v", tt.err)
	}
}

func TestMapDomainError_WrappedErrorKeepsMapping(t *testing.T) {
	wrapped := fmt.Errorf("appointmentService.Cancel: %w", domain.ErrPreconditionFailed)

	status, code, _ := handler.MapDomainError(wrapped)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "PRECONDITION_FAILED", code)
}
