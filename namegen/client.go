package namegen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"github.com/valyala/fasthttp"

	"github.com/abhissng/versename/adapters/log"
	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/result"
	"github.com/abhissng/versename/utils/circuitBreaker"
	"github.com/abhissng/versename/utils/constant"
	"github.com/abhissng/versename/utils/helpers"
)

const retryAfterHeader = "Retry-After"

// Suggestion is the remote naming service's answer for one prompt.
type Suggestion struct {
	Names []string `json:"names"`
}

type suggestRequest struct {
	Prompt string `json:"prompt"`
}

// rawResponse carries the transport-level outcome across the circuit breaker
// boundary. Only transport failures count against the breaker; HTTP-level
// statuses (including throttling) are mapped afterwards.
type rawResponse struct {
	status     int
	retryAfter time.Duration
	body       []byte
}

// Client calls the remote naming service. It is safe for concurrent use.
type Client struct {
	url         string
	timeout     time.Duration
	useFastHTTP bool
	headers     map[string]string
	breaker     *gobreaker.CircuitBreaker
	logger      *log.Log
}

// NewClient creates a Client for the given service URL.
func NewClient(serviceURL string, options ...ClientOption) (*Client, blame.Blame) {
	parsed, err := url.ParseRequestURI(serviceURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, blame.URLValidationFailed(serviceURL, err)
	}

	c := &Client{
		url:     serviceURL,
		timeout: 30 * time.Second,
		headers: map[string]string{},
		breaker: circuitBreaker.NewCircuitBreaker(),
		logger:  log.NewBasicLogger(helpers.IsProdEnvironment()),
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// Suggest asks the service for name suggestions for one prompt. A 429 answer
// becomes a throttle blame carrying the service-advised retry-after, so the
// dispatcher can pause all admissions.
func (c *Client) Suggest(prompt string) result.Result[Suggestion] {
	body, err := json.Marshal(suggestRequest{Prompt: prompt})
	if err != nil {
		return result.NewFailure[Suggestion](blame.CreateRequestBodyFailed(err))
	}

	out, err := c.breaker.Execute(func() (any, error) {
		if c.useFastHTTP {
			return c.postFast(body)
		}
		return c.post(body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return result.NewFailure[Suggestion](blame.CircuitOpen(err))
		}
		return result.NewFailure[Suggestion](blame.RemoteCallFailed(err))
	}

	resp := out.(*rawResponse)
	switch {
	case resp.status == http.StatusOK:
		var suggestion Suggestion
		if err := json.Unmarshal(resp.body, &suggestion); err != nil {
			return result.NewFailure[Suggestion](blame.DecodeResponseFailed(err))
		}
		return result.NewSuccess(&suggestion)
	case resp.status == http.StatusTooManyRequests:
		c.logger.Warn("naming service throttled the call", log.Duration("retry_after", resp.retryAfter))
		return result.NewFailure[Suggestion](blame.Throttled(resp.retryAfter, fmt.Errorf("remote returned status %d", resp.status)))
	default:
		return result.NewFailure[Suggestion](blame.RemoteCallFailed(fmt.Errorf("unexpected status %d", resp.status)))
	}
}

// post executes the request with the standard net/http client.
func (c *Client) post(body []byte) (*rawResponse, error) {
	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", constant.JSONContentType.String())
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: c.timeout}
	//#nosec G704
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &rawResponse{
		status:     resp.StatusCode,
		retryAfter: parseRetryAfter(resp.Header.Get(retryAfterHeader)),
		body:       respBody,
	}, nil
}

// postFast executes the request with the FastHTTP client.
func (c *Client) postFast(body []byte) (*rawResponse, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(constant.JSONContentType.String())
	req.SetBody(body)
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	client := &fasthttp.Client{}
	if err := client.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, err
	}

	return &rawResponse{
		status:     resp.StatusCode(),
		retryAfter: parseRetryAfter(string(resp.Header.Peek(retryAfterHeader))),
		body:       append([]byte(nil), resp.Body()...),
	}, nil
}

// parseRetryAfter reads a delay-seconds Retry-After value. Anything else
// (absent, HTTP-date, garbage) yields zero and the caller's default applies.
func parseRetryAfter(value string) time.Duration {
	if helpers.IsEmpty(value) {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
