// Package apperrors defines the error taxonomy of the complaint intake
// pipeline. The three expected kinds (authorization, validation,
// business rule) carry a user-facing message surfaced verbatim;
// StorageError and anything unclassified collapse to a generic message
// at the transport boundary.
package apperrors

import "fmt"

// Reason names the specific rule a submission violated.
type Reason string

const (
	ReasonNotAuthenticated      Reason = "not_authenticated"
	ReasonMissingRequiredFields Reason = "missing_required_fields"
	ReasonInvalidCoordinates    Reason = "invalid_coordinates"
	ReasonInvalidAccuracyRadius Reason = "invalid_accuracy_radius"
	ReasonNoAuthority           Reason = "no_authority_for_district"
)

// AuthorizationError means the request carried no authenticated session.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// ErrNotAuthenticated is returned before any other check runs.
var ErrNotAuthenticated = &AuthorizationError{Message: "Not authenticated"}

// ValidationError is a field, coordinate or radius violation. The
// validator reports the first violated rule only.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// BusinessRuleError is an actionable rejection, not a system fault:
// the submission was well-formed but cannot be routed.
type BusinessRuleError struct {
	Reason  Reason
	Message string
}

func (e *BusinessRuleError) Error() string { return e.Message }

// StorageError wraps any store failure. Its detail is logged, never
// shown to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError, or returns nil if err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
