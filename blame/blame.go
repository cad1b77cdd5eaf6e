// Package blame provides a custom error type that adds additional information and functionality to standard errors.
package blame

import (
	"time"

	"github.com/abhissng/versename/utils/types"
)

// Blame represents a custom error type that provides additional information and functionality.
type Blame interface {
	// error is embedded to ensure Blame implements the error interface.
	error

	// FetchErrCode returns the error code associated with the error.
	FetchErrCode() types.ErrorCode

	// FetchMessage returns the error message.
	FetchMessage() string

	// FetchDescription returns the error description.
	FetchDescription() string

	// WithMessage sets the error message and returns the updated Blame instance.
	WithMessage(string) *Error

	// WithDescription sets the error description and returns the updated Blame instance.
	WithDescription(string) *Error

	// FetchFields returns a map of additional error fields.
	FetchFields() map[string]any

	// FetchSource returns the source of the error.
	FetchSource() string

	// FetchComponent returns the component associated with the error.
	FetchComponent() types.ComponentErrorType

	// FetchCauses returns a slice of underlying errors that caused this error.
	FetchCauses() []error

	// FetchRetryAfter returns the wait advised by the failing collaborator.
	// It is zero for anything that is not a throttle signal.
	FetchRetryAfter() time.Duration

	// WithField adds a new field to the error and returns the updated Blame instance.
	WithField(key string, value any) *Error

	// WithFields adds multiple fields to the error and returns the updated Blame instance.
	WithFields(fields map[string]any) *Error

	// WithCause adds a new underlying error to the error and returns the updated Blame instance.
	WithCause(err error) *Error

	// WithComponent sets the component associated with the error and returns the updated Blame instance.
	WithComponent(component types.ComponentErrorType) *Error

	// WithRetryAfter sets the advised wait and returns the updated Blame instance.
	WithRetryAfter(d time.Duration) *Error

	// ErrorFromBlame creates a new error string from a Blame instance.
	ErrorFromBlame() error
}

// NewBlame creates a new instance of Blame with the provided error code, message and description.
// It captures the source of the error at the point of instantiation.
func NewBlame(
	errCode types.ErrorCode,
	message, description string,
) Blame {
	return NewError(errCode, message, description)
}

// NewBasicBlame creates a new instance of Blame with the provided error code.
// It captures the source of the error at the point of instantiation.
func NewBasicBlame(
	errCode types.ErrorCode,
) Blame {
	return NewBasicError(errCode)
}

// NilBlame returns a nil blame
func NilBlame() Blame {
	return nil
}

// IsThrottled reports whether the blame is a throttle signal from the remote service.
func IsThrottled(b Blame) bool {
	return b != nil && b.FetchErrCode() == ErrorThrottled
}
