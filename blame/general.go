package blame

import (
	"time"

	"github.com/abhissng/versename/utils/constant"
)

/*
** These are internal error functions which build
** the well-known blames used across the library
 */

// InternalServerError is an unclassified internal error.
func InternalServerError(cause error) Blame {
	return NewBlame(ErrorInternalServerError, "internal error", "an unclassified internal error occurred").
		WithComponent(constant.ErrLibrary).
		WithCause(cause)
}

// InvalidDispatcherConfig is an error for a malformed dispatcher configuration.
// It fails the whole batch call before any dispatch begins.
func InvalidDispatcherConfig(reason string) Blame {
	return NewBlame(ErrorInvalidDispatcherConfig, "invalid dispatcher configuration", reason).
		WithComponent(constant.ErrDispatcher).
		WithField("reason", reason)
}

// DispatchProcessorMissing is an error for a nil task processor.
func DispatchProcessorMissing() Blame {
	return NewBlame(ErrorDispatchProcessorMissing, "task processor missing", "a dispatcher requires a non-nil task processor").
		WithComponent(constant.ErrDispatcher)
}

// InvalidTaskInput is an error when a single task input is malformed.
// It is recorded at that task's index only; the batch proceeds.
func InvalidTaskInput(index int, cause error) Blame {
	return NewBlame(ErrorInvalidTaskInput, "invalid task input", "the task input could not be used").
		WithComponent(constant.ErrDispatcher).
		WithField("index", index).
		WithCause(cause)
}

// TaskExecutionFailed is an error when the task function failed for reasons
// unrelated to rate limiting.
func TaskExecutionFailed(cause error) Blame {
	return NewBlame(ErrorTaskExecutionFailed, "task execution failed", "the task function returned an error").
		WithComponent(constant.ErrDispatcher).
		WithCause(cause)
}

// TaskPanicked is an error when the task function panicked while running.
func TaskPanicked(index int, recovered any) Blame {
	return NewBlame(ErrorTaskPanicked, "task panicked", "the task function panicked while running").
		WithComponent(constant.ErrDispatcher).
		WithField("index", index).
		WithField("panic", recovered)
}

// Throttled is the throttle signal from the remote service. When the service
// advises no usable wait, retryAfter falls back to DefaultRetryAfter.
func Throttled(retryAfter time.Duration, cause error) Blame {
	if retryAfter <= 0 {
		retryAfter = DefaultRetryAfter
	}
	return NewBlame(ErrorThrottled, "remote service throttled the call", "too many requests; new admissions should pause").
		WithComponent(constant.ErrNamegen).
		WithRetryAfter(retryAfter).
		WithCause(cause)
}

// RemoteCallFailed is an error when the remote call itself failed.
func RemoteCallFailed(cause error) Blame {
	return NewBlame(ErrorRemoteCallFailed, "remote call failed", "the remote naming service call did not succeed").
		WithComponent(constant.ErrNamegen).
		WithCause(cause)
}

// CircuitOpen is an error when the client circuit breaker rejected the call.
func CircuitOpen(cause error) Blame {
	return NewBlame(ErrorCircuitOpen, "circuit open", "the client circuit breaker rejected the call").
		WithComponent(constant.ErrNamegen).
		WithCause(cause)
}

// DecodeResponseFailed is an error when the remote response could not be decoded.
func DecodeResponseFailed(cause error) Blame {
	return NewBlame(ErrorDecodeResponseFailed, "decode response failed", "the remote response body could not be decoded").
		WithComponent(constant.ErrNamegen).
		WithCause(cause)
}

// CreateRequestBodyFailed is an error when the request payload could not be encoded.
func CreateRequestBodyFailed(cause error) Blame {
	return NewBlame(ErrorCreateRequestBodyFailed, "create request body failed", "the request payload could not be encoded").
		WithComponent(constant.ErrNamegen).
		WithCause(cause)
}

// URLValidationFailed is an error when the remote service URL is malformed.
func URLValidationFailed(url string, cause error) Blame {
	return NewBlame(ErrorURLValidationFailed, "url validation failed", "the remote service url is malformed").
		WithComponent(constant.ErrNamegen).
		WithField("url", url).
		WithCause(cause)
}

// EmptyPrompt is an error when a poem produced no prompt text.
func EmptyPrompt(index int) Blame {
	return NewBlame(ErrorEmptyPrompt, "empty prompt", "the poem produced no prompt text").
		WithComponent(constant.ErrNamegen).
		WithField("index", index)
}

// CorpusReadFailed is an error when the poem corpus could not be read.
func CorpusReadFailed(path string, cause error) Blame {
	return NewBlame(ErrorCorpusReadFailed, "corpus read failed", "the poem corpus could not be read").
		WithComponent(constant.ErrCorpus).
		WithField("path", path).
		WithCause(cause)
}

// CorpusDecodeFailed is an error when a corpus file is not valid JSON.
func CorpusDecodeFailed(path string, cause error) Blame {
	return NewBlame(ErrorCorpusDecodeFailed, "corpus decode failed", "the corpus file is not valid poem JSON").
		WithComponent(constant.ErrCorpus).
		WithField("path", path).
		WithCause(cause)
}

// CorpusWriteFailed is an error when the converted corpus could not be written.
func CorpusWriteFailed(path string, cause error) Blame {
	return NewBlame(ErrorCorpusWriteFailed, "corpus write failed", "the output file could not be written").
		WithComponent(constant.ErrCorpus).
		WithField("path", path).
		WithCause(cause)
}

// ConfigLoadFailure is an error when the application configuration could not be loaded.
func ConfigLoadFailure(cause error) Blame {
	return NewBlame(ErrorConfigLoadFailure, "config load failure", "the application configuration could not be loaded").
		WithComponent(constant.ErrAdaptors).
		WithCause(cause)
}

// ConfigValidationFailure is an error when the application configuration is invalid.
func ConfigValidationFailure(cause error) Blame {
	return NewBlame(ErrorConfigValidationFailure, "config validation failure", "the application configuration is invalid").
		WithComponent(constant.ErrAdaptors).
		WithCause(cause)
}

// WorkerProcessorMissing is an error for a nil worker pool processor.
func WorkerProcessorMissing() Blame {
	return NewBlame(ErrorWorkerProcessorMissing, "worker processor missing", "a worker pool requires a non-nil task processor").
		WithComponent(constant.ErrUtils)
}
