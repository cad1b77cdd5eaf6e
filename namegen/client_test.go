package namegen_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/namegen"
	"github.com/abhissng/versename/utils/circuitBreaker"
)

func TestNewClientRejectsMalformedURL(t *testing.T) {
	_, err := namegen.NewClient("not a url")
	require.NotNil(t, err)
	assert.Equal(t, blame.ErrorURLValidationFailed, err.FetchErrCode())
}

func TestSuggestDecodesNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"names":["明月","疑霜"]}`))
	}))
	defer server.Close()

	client, err := namegen.NewClient(server.URL)
	require.Nil(t, err)

	res := client.Suggest("a prompt")
	require.True(t, res.IsSuccess())
	assert.Equal(t, []string{"明月", "疑霜"}, res.ToValue().Names)
}

func TestSuggestMapsThrottleWithRetryAfter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := namegen.NewClient(server.URL)
	require.Nil(t, err)

	res := client.Suggest("a prompt")
	require.True(t, res.IsError())
	b := res.Error()
	assert.True(t, blame.IsThrottled(b))
	assert.Equal(t, 2*time.Second, b.FetchRetryAfter())
}

func TestSuggestThrottleWithoutHeaderUsesDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := namegen.NewClient(server.URL)
	require.Nil(t, err)

	res := client.Suggest("a prompt")
	require.True(t, res.IsError())
	assert.Equal(t, blame.DefaultRetryAfter, res.Error().FetchRetryAfter())
}

func TestSuggestUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := namegen.NewClient(server.URL)
	require.Nil(t, err)

	res := client.Suggest("a prompt")
	require.True(t, res.IsError())
	assert.Equal(t, blame.ErrorRemoteCallFailed, res.Error().FetchErrCode())
}

func TestSuggestGarbageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := namegen.NewClient(server.URL)
	require.Nil(t, err)

	res := client.Suggest("a prompt")
	require.True(t, res.IsError())
	assert.Equal(t, blame.ErrorDecodeResponseFailed, res.Error().FetchErrCode())
}

func TestSuggestOpenBreakerShortCircuits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // transport failures from now on

	breaker := circuitBreaker.NewCircuitBreaker(
		circuitBreaker.WithReadyToTrip(func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		}),
	)
	client, err := namegen.NewClient(server.URL, namegen.WithBreaker(breaker))
	require.Nil(t, err)

	first := client.Suggest("a prompt")
	require.True(t, first.IsError())
	assert.Equal(t, blame.ErrorRemoteCallFailed, first.Error().FetchErrCode())

	second := client.Suggest("a prompt")
	require.True(t, second.IsError())
	assert.Equal(t, blame.ErrorCircuitOpen, second.Error().FetchErrCode())
}
