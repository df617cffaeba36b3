package errorutil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/gate"
)

func TestToDomainErrorGateTaxonomy(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"validation", &gate.ValidationError{Message: "passwords do not match"}, "VALIDATION_FAILED", http.StatusBadRequest},
		{"auth service", &gate.AuthServiceError{Op: "login", Err: errors.New("invalid credentials")}, "AUTH_FAILED", http.StatusUnauthorized},
		{"data sync", &gate.DataSyncError{Op: "status check", Err: errors.New("timeout")}, "DATA_SYNC_FAILED", http.StatusServiceUnavailable},
		{"session invalid", &gate.SessionInvalidError{Reason: "no active session"}, "SESSION_INVALID", http.StatusUnauthorized},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			de := ToDomainError(tc.err)
			require.Equal(t, tc.code, de.Code)
			require.Equal(t, tc.status, de.HTTPStatus)
		})
	}
}

func TestAuthServiceMessagePassesThroughVerbatim(t *testing.T) {
	de := ToDomainError(&gate.AuthServiceError{Op: "create account", Err: errors.New("email already registered")})
	require.Equal(t, "email already registered", de.Message)
}

func TestToDomainErrorNil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
}

func TestDomainErrorPassthrough(t *testing.T) {
	orig := NewForbidden("account not approved")
	de := ToDomainError(orig)
	require.Equal(t, "FORBIDDEN", de.Code)
	require.Equal(t, "account not approved", de.Message)
}
