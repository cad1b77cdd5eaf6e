package blame

import (
	"time"

	"github.com/abhissng/versename/utils/types"
)

// DefaultRetryAfter is used when a throttle signal carries no usable duration.
const DefaultRetryAfter = 30 * time.Second

// Error Identifiers for internal library
const (
	ErrorInternalServerError      types.ErrorCode = "error-internal-server-error"
	ErrorInvalidDispatcherConfig  types.ErrorCode = "error-invalid-dispatcher-config"
	ErrorInvalidTaskInput         types.ErrorCode = "error-invalid-task-input"
	ErrorTaskExecutionFailed      types.ErrorCode = "error-task-execution-failed"
	ErrorTaskPanicked             types.ErrorCode = "error-task-panicked"
	ErrorThrottled                types.ErrorCode = "error-throttled"
	ErrorRemoteCallFailed         types.ErrorCode = "error-remote-call-failed"
	ErrorCircuitOpen              types.ErrorCode = "error-circuit-open"
	ErrorDecodeResponseFailed     types.ErrorCode = "error-decode-response-failed"
	ErrorCreateRequestBodyFailed  types.ErrorCode = "error-create-request-body-failed"
	ErrorURLValidationFailed      types.ErrorCode = "error-url-validation-failed"
	ErrorCorpusReadFailed         types.ErrorCode = "error-corpus-read-failed"
	ErrorCorpusDecodeFailed       types.ErrorCode = "error-corpus-decode-failed"
	ErrorCorpusWriteFailed        types.ErrorCode = "error-corpus-write-failed"
	ErrorConfigLoadFailure        types.ErrorCode = "error-config-load-failure"
	ErrorConfigValidationFailure  types.ErrorCode = "error-config-validation-failure"
	ErrorEmptyPrompt              types.ErrorCode = "error-empty-prompt"
	ErrorWorkerProcessorMissing   types.ErrorCode = "error-worker-processor-missing"
	ErrorDispatchProcessorMissing types.ErrorCode = "error-dispatch-processor-missing"
)
