package gate

import "fmt"

// ValidationError reports client-side input problems. No store call is
// made when one is raised.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthServiceError wraps a session-store rejection. The store's message
// is surfaced to the user verbatim.
type AuthServiceError struct {
	Op  string
	Err error
}

func (e *AuthServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AuthServiceError) Unwrap() error { return e.Err }

// Message returns the store's text without the operation prefix, for
// user-facing surfaces.
func (e *AuthServiceError) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Op
}

// DataSyncError reports a profile read/write failure after a successful
// auth step. It is fatal only where it gates a security decision; see
// Login's fail-closed status check.
type DataSyncError struct {
	Op  string
	Err error
}

func (e *DataSyncError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataSyncError) Unwrap() error { return e.Err }

// SessionInvalidError reports that no live session was found where one
// was expected. The gate returns control to the unauthenticated state.
type SessionInvalidError struct {
	Reason string
}

func (e *SessionInvalidError) Error() string { return e.Reason }
