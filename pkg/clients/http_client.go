package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	timeout          = time.Second * 15
	defaultRetries   = 2
	defaultRetryBase = 200 * time.Millisecond
)

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClientAdapter) Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return
	}
	if headers != nil {
		req.Header = headers.Clone()
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode

	return
}

// HTTPClient retries a Post that fails in transport or gets a 5xx answer.
// 4xx answers are returned to the caller as is.
type HTTPClient struct {
	client    HTTPClientI
	retries   uint64
	retryBase time.Duration
}

type Option func(*HTTPClient)

func WithRetries(retries uint64, base time.Duration) Option {
	return func(h *HTTPClient) {
		h.retries = retries
		h.retryBase = base
	}
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	h := &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
		retries:   defaultRetries,
		retryBase: defaultRetryBase,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTTPClient) Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error) {
	backoff := retry.WithMaxRetries(h.retries, retry.NewExponential(h.retryBase))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		statusCode, respBody, err = h.client.Post(ctx, url, headers, body)
		switch {
		case err != nil && ctx.Err() != nil:
			return err
		case err != nil:
			return retry.RetryableError(err)
		case statusCode >= http.StatusInternalServerError:
			return retry.RetryableError(fmt.Errorf("server answered %d", statusCode))
		}
		return nil
	})
	if err != nil && statusCode >= http.StatusInternalServerError {
		// callers inspect the status themselves
		err = nil
	}
	return statusCode, respBody, err
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
