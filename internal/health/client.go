package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

var ErrHealthcheckFailed = errors.New("healthcheck failed")

// Query sends an HTTP request to the other instance of
// the program, and to its internal healthcheck server.
func (c *Client) Query(ctx context.Context, address string) error {
	url := "http://" + queryAddress(address)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("querying health server: %w", err)
	} else if response.StatusCode == http.StatusOK {
		_ = response.Body.Close()
		return nil
	}

	b, err := io.ReadAll(response.Body)
	_ = response.Body.Close()
	if err != nil {
		return fmt.Errorf("reading body from response with status %s: %w",
			response.Status, err)
	}

	return fmt.Errorf("%w: %s: %s", ErrHealthcheckFailed,
		response.Status, strings.TrimSpace(string(b)))
}

// queryAddress replaces an unspecified listening host
// with the loopback address.
func queryAddress(listeningAddress string) (address string) {
	host, port, err := net.SplitHostPort(listeningAddress)
	if err != nil {
		return listeningAddress
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
