package constant

import (
	"github.com/abhissng/versename/utils/types"
)

// These are generic constant for the application
const (
	Environment = "ENVIRONMENT"
	ServiceName = "SERVICE_NAME"

	DefaultServiceName = "versename"
)

// These are ComponentErrorType constant
const (
	ErrLibrary    types.ComponentErrorType = "library"
	ErrAdaptors   types.ComponentErrorType = "adaptors"
	ErrUtils      types.ComponentErrorType = "utils"
	ErrDispatcher types.ComponentErrorType = "dispatcher"
	ErrCorpus     types.ComponentErrorType = "corpus"
	ErrNamegen    types.ComponentErrorType = "namegen"
)

// Supported content types for the remote client
const (
	JSONContentType types.ContentType = "application/json"
)
