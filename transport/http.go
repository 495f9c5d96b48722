package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	beacon "github.com/beaconhq/beacon-go"
)

const defaultTimeout = 10 * time.Second

// HTTP sends payloads as a JSON POST. The zero value is not usable;
// construct with NewHTTP.
type HTTP struct {
	client *http.Client
}

// NewHTTP returns an HTTP transport. A nil client gets a default one with
// a request timeout; pass your own to control timeouts, proxies or TLS.
func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTP{client: client}
}

// Send implements beacon.Transport.
func (t *HTTP) Send(ctx context.Context, endpoint string, p beacon.Payload) error {
	u, err := url.Parse(endpoint)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s", ErrServerRejected, resp.Status)
	}

	return nil
}
