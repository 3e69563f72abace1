package platform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/yash-070702/Codash-next/internal/errvalues"
)

// getJSON performs a GET against an upstream platform API and decodes the
// response body. Transport failures and non-2xx statuses map to the
// upstream-unavailable sentinel, except 404 which means the handle is unknown.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errvalues.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errvalues.ErrHandleNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: status %d", errvalues.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", errvalues.ErrUpstreamUnavailable, err)
	}
	return nil
}

// postJSON sends a JSON body (GraphQL queries) and decodes the response.
func postJSON(ctx context.Context, client *http.Client, url string, body, out any) error {
	encoded, err := sonic.ConfigDefault.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errvalues.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", errvalues.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", errvalues.ErrUpstreamUnavailable, resp.StatusCode)
	}
	if err := sonic.ConfigDefault.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", errvalues.ErrUpstreamUnavailable, err)
	}
	return nil
}
