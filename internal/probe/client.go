package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptrace"
	"sync/atomic"
	"time"
)

// Client posts to the scheduler endpoint the same way
// the scheduler triggers itself.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	blocking   bool
}

func New(settings Settings) *Client {
	settings.SetDefaults()

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		panic(fmt.Sprintf("transport %T is not *http.Transport", http.DefaultTransport))
	}
	clonedTransport := transport.Clone()
	clonedTransport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: !*settings.SSLVerify, //nolint:gosec
		MinVersion:         tls.VersionTLS12,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: &loggingRoundTripper{
				proxied: clonedTransport,
				logger:  settings.Logger,
			},
		},
		timeout:  settings.Timeout,
		blocking: *settings.Blocking,
	}
}

// Post sends a POST request to the URL and returns within the
// client timeout.
// In non-blocking mode, a request fully written but without a
// response received before the timeout is reported as a sent
// response without status code.
// Any request failure is returned as a *wperror.Error.
func (c *Client) Post(ctx context.Context, url string) (
	response Response, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var requestWritten atomic.Bool
	ctx = httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
		WroteRequest: func(info httptrace.WroteRequestInfo) {
			if info.Err == nil {
				requestWritten.Store(true)
			}
		},
	})

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return response, toCodedError(err)
	}

	httpResponse, err := c.httpClient.Do(request)
	if err != nil {
		if !c.blocking && requestWritten.Load() &&
			errors.Is(err, context.DeadlineExceeded) {
			return Response{Sent: true}, nil
		}
		return response, toCodedError(err)
	}
	_ = httpResponse.Body.Close()

	return Response{
		Sent:       true,
		StatusCode: httpResponse.StatusCode,
		Status:     httpResponse.Status,
		Header:     httpResponse.Header,
	}, nil
}
