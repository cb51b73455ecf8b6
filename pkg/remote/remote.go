// Package remote implements the lookup client used for cross-service entity
// fetches. A call resolves the logical service name through discovery, then
// performs a single synchronous HTTP GET bounded by the configured timeout.
//
// Exactly two failure modes are exposed: ErrNotFound for a remote 404, and
// ErrUnavailable for everything else (resolution failure, timeout, connection
// refused, unexpected status, malformed body). There is no retry; a failed
// attempt surfaces immediately to the caller.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ghuser/lendhub/pkg/discovery"
)

// Sentinel errors for remote lookups. Use errors.Is() to check these.
var (
	// ErrNotFound indicates the remote service answered 404 for the entity.
	ErrNotFound = errors.New("remote entity not found")

	// ErrUnavailable indicates the remote service could not be consulted.
	ErrUnavailable = errors.New("service unavailable")
)

// Client performs discovery-resolved HTTP lookups against peer services.
type Client struct {
	resolver discovery.Resolver
	http     *http.Client
}

// NewClient returns a Client resolving addresses through resolver. timeout
// bounds each call end to end, including resolution and body decoding.
func NewClient(resolver discovery.Resolver, timeout time.Duration) *Client {
	return &Client{
		resolver: resolver,
		http:     &http.Client{Timeout: timeout},
	}
}

// GetJSON fetches path from one live instance of service and decodes the JSON
// response into out. path must start with "/".
func (c *Client) GetJSON(ctx context.Context, service, path string, out any) error {
	inst, err := c.resolver.Resolve(ctx, service)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, service, err)
	}

	url := "http://" + inst.Addr + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, service, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s%s", ErrNotFound, service, path)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %s: unexpected status %d", ErrUnavailable, service, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrUnavailable, service, err)
	}
	return nil
}

// PostJSON posts body as JSON to path on one live instance of service and
// decodes the response into out (pass nil to discard). Used by tooling that
// writes through the public endpoints; the lookup paths only ever GET.
func (c *Client) PostJSON(ctx context.Context, service, path string, body, out any) error {
	inst, err := c.resolver.Resolve(ctx, service)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, service, err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %s: encode request: %v", ErrUnavailable, service, err)
	}

	url := "http://" + inst.Addr + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, service, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, service, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: %s: unexpected status %d", ErrUnavailable, service, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrUnavailable, service, err)
	}
	return nil
}
