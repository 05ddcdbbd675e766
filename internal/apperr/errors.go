// Package apperr holds the domain error taxonomy. Services return these
// sentinels (usually wrapped with fmt.Errorf and %w); controllers match them
// with errors.Is to pick the HTTP status.
package apperr

import "errors"

var (
	// ErrValidation marks bad or missing input that the caller can correct.
	ErrValidation = errors.New("required fields are missing")

	// ErrNotFound marks an unknown application number, teacher or request.
	ErrNotFound = errors.New("resource not found")

	// ErrNotAssociated marks a teacher decision on a request that does not
	// address that teacher.
	ErrNotAssociated = errors.New("teacher not associated with this application")

	// ErrAttendanceNotConfirmed gates feedback on a Present attendance mark.
	ErrAttendanceNotConfirmed = errors.New("feedback can only be submitted if attendance is marked as Present")

	// ErrMissingFields marks a feedback payload without all required fields.
	ErrMissingFields = errors.New("missing required feedback fields")

	// ErrForbidden marks an operation on a resource the caller does not own.
	ErrForbidden = errors.New("operation not permitted for this user")

	// ErrConflict marks a write that lost an optimistic-concurrency race or
	// would move a request's status backwards.
	ErrConflict = errors.New("conflicting update")

	// ErrInvalidCredentials marks a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrServer marks an unexpected storage or internal failure.
	ErrServer = errors.New("server error")
)
