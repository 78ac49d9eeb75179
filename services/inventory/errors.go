// File: services/inventory/errors.go
package inventory

import "errors"

// Refusals surfaced to the operator before any persistence call. Handlers map
// these to 4xx responses; anything else from this package is a storage error.
var (
	ErrNoCourseSelected     = errors.New("no course selected; pick a course first")
	ErrPastDate             = errors.New("tee times on past dates cannot be modified")
	ErrConfirmationRequired = errors.New("deleting a tee time requires confirmation")
	ErrCourseNotVisible     = errors.New("course is not visible to this operator")
	ErrNotFound             = errors.New("tee time not found")
)

// ValidationError is a form-level refusal with an operator-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsRefusal reports whether err is an operator-facing refusal rather than a
// storage failure.
func IsRefusal(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrNoCourseSelected) ||
		errors.Is(err, ErrPastDate) ||
		errors.Is(err, ErrConfirmationRequired) ||
		errors.Is(err, ErrCourseNotVisible)
}
