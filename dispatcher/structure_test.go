package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/result"
)

func echoProcessor() result.TaskProcessor[int, int] {
	return result.ProcessorFunc[int, int](func(input int) result.Result[int] {
		return result.NewSuccess(&input)
	})
}

func TestNewDispatcherDefaults(t *testing.T) {
	d, err := NewDispatcher(echoProcessor())
	require.Nil(t, err)

	assert.Equal(t, DefaultRPM, d.rpm)
	assert.Equal(t, DefaultRPM, d.maxConcurrent) // mirrors rpm when unset
	assert.Equal(t, DefaultWindowSpan, d.windowSpan)
	assert.NotNil(t, d.window)
}

func TestNewDispatcherMaxConcurrentOverride(t *testing.T) {
	d, err := NewDispatcher(echoProcessor(), WithRPM[int, int](20), WithMaxConcurrent[int, int](4))
	require.Nil(t, err)

	assert.Equal(t, 20, d.rpm)
	assert.Equal(t, 4, d.maxConcurrent)
}

func TestNewDispatcherRejectsBadConfig(t *testing.T) {
	_, err := NewDispatcher(echoProcessor(), WithRPM[int, int](0))
	require.NotNil(t, err)
	assert.Equal(t, blame.ErrorInvalidDispatcherConfig, err.FetchErrCode())

	_, err = NewDispatcher(echoProcessor(), WithMaxConcurrent[int, int](-1))
	require.NotNil(t, err)
	assert.Equal(t, blame.ErrorInvalidDispatcherConfig, err.FetchErrCode())

	_, err = NewDispatcher(echoProcessor(), WithWindowSpan[int, int](-1))
	require.NotNil(t, err)
	assert.Equal(t, blame.ErrorInvalidDispatcherConfig, err.FetchErrCode())
}

func TestNewDispatcherRejectsNilProcessor(t *testing.T) {
	_, err := NewDispatcher[int, int](nil)
	require.NotNil(t, err)
	assert.Equal(t, blame.ErrorDispatchProcessorMissing, err.FetchErrCode())
}
