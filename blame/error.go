package blame

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/abhissng/versename/utils/helpers"
	"github.com/abhissng/versename/utils/types"
)

// Error struct holds the error information
type Error struct {
	errCode     types.ErrorCode
	component   types.ComponentErrorType
	message     string
	description string
	fields      map[string]any
	causes      []error
	source      string
	retryAfter  time.Duration
}

// NewError creates a new Error instance
func NewError(
	errCode types.ErrorCode,
	message, description string,
) *Error {
	return &Error{
		errCode:     errCode,
		message:     message,
		description: description,
		fields:      map[string]any{},
		causes:      make([]error, 0),
		source:      findSource(),
	}
}

// NewBasicError creates a new Error instance with the given error code
func NewBasicError(
	errCode types.ErrorCode,
) *Error {
	return &Error{
		errCode: errCode,
		fields:  map[string]any{},
		causes:  make([]error, 0),
		source:  findSource(),
	}
}

// FetchErrCode returns the error code of the error as a ErrorCode
func (e *Error) FetchErrCode() types.ErrorCode {
	return e.errCode
}

// FetchMessage returns the message of the error as a string
func (e *Error) FetchMessage() string {
	return e.message
}

// FetchDescription returns the description of the error as a string
func (e *Error) FetchDescription() string {
	return e.description
}

// WithMessage sets the message of the error and returns the updated Error instance.
func (e *Error) WithMessage(msg string) *Error {
	e.message = msg
	return e
}

// WithDescription sets the description of the error and returns the updated Error instance.
func (e *Error) WithDescription(description string) *Error {
	e.description = description
	return e
}

// FetchFields returns the fields of the error as a map[string]any
func (e *Error) FetchFields() map[string]any {
	return e.fields
}

// FetchSource returns the source of the error as a string
func (e *Error) FetchSource() string {
	return e.source
}

// FetchComponent returns the component of the error as a ComponentErrorType
func (e *Error) FetchComponent() types.ComponentErrorType {
	return e.component
}

// FetchCauses returns the causes of the error as a slice of errors
func (e *Error) FetchCauses() []error {
	return e.causes
}

// FetchRetryAfter returns the advised wait carried by the error.
func (e *Error) FetchRetryAfter() time.Duration {
	return e.retryAfter
}

// WithField adds a field to the error and returns the updated Error instance.
func (e *Error) WithField(key string, value any) *Error {
	e.fields[key] = value
	return e
}

// WithFields adds multiple fields to the error and returns the updated Error instance.
func (e *Error) WithFields(fields map[string]any) *Error {
	for k, v := range fields {
		e.fields[k] = v
	}
	return e
}

// WithCause adds a cause to the error and returns the updated Error instance.
func (e *Error) WithCause(err error) *Error {
	if err != nil {
		e.causes = append(e.causes, err)
	}
	return e
}

// WithComponent sets the component of the error and returns the updated Error instance.
func (e *Error) WithComponent(component types.ComponentErrorType) *Error {
	e.component = component
	return e
}

// WithRetryAfter sets the advised wait of the error and returns the updated Error instance.
func (e *Error) WithRetryAfter(d time.Duration) *Error {
	if d > 0 {
		e.retryAfter = d
	}
	return e
}

// Error returns the error message with the causes as a string
func (e *Error) Error() string {
	if len(e.causes) == 0 {
		return e.errCode.String()
	}
	return fmt.Sprintf("%s (causes: %v)", e.errCode.String(), e.causes)
}

// ErrorFromBlame creates a new error from a Blame instance.
func (e *Error) ErrorFromBlame() error {
	return errors.New(helpers.FetchErrorStack(e.FetchCauses()))
}

// findSource captures the source of the error at the point of instantiation.
func findSource() string {
	_, file, line, _ := runtime.Caller(2)
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}
	return fmt.Sprintf("%s:%d", file, line)
}
