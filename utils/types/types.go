package types

import (
	"go.uber.org/zap"
)

// StringConstant represents a constant string value.
type StringConstant string

// String returns the string representation of the StringConstant.
func (s StringConstant) String() string {
	return string(s)
}

// ErrorCode represents an error code.
type ErrorCode string

// String returns the string representation of the ErrorCode.
func (e ErrorCode) String() string {
	return string(e)
}

// ComponentErrorType represents the type of component error.
type ComponentErrorType string

// String returns the string representation of the ComponentErrorType.
func (e ComponentErrorType) String() string {
	return string(e)
}

// ContentType defines the type for a ContentType.
type ContentType string

// Method to convert ContentType Type to string
func (c ContentType) String() string {
	return string(c)
}

// LogMode represents the mode used when printing with the basic console helpers.
type LogMode string

// String returns the string representation of the LogMode.
func (m LogMode) String() string {
	return string(m)
}

// Field type to represent structured log fields
//
//nolint:gochecknoglobals
type Field = zap.Field
