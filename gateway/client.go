// Package gateway wraps the clinic REST backend. Each gateway maps one
// resource group between wire JSON and the portal's view shapes; nothing in
// here retries, caches or times out on its own.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"clinic-portal/models"
)

// Client is the shared transport for all gateways: base URL plus a traced
// http.Client that forwards the session's backend cookies on every call.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, sess *models.Session) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		for _, cookie := range sess.BackendCookies {
			req.Header.Add("Cookie", cookie)
		}
	}

	return c.http.Do(req)
}

// getList issues a GET and normalizes the list envelope.
func (c *Client) getList(ctx context.Context, path string, sess *models.Session, resourceKeys ...string) ([]json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, sess)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("backend returned %s", resp.Status)
	}
	return unwrapList(raw, resourceKeys...)
}

// doResult issues a mutating call and decodes the uniform result envelope.
// A non-2xx status forces Success to false even when the body says otherwise.
func (c *Client) doResult(ctx context.Context, method, path string, body any, sess *models.Session) (*Result, error) {
	resp, err := c.do(ctx, method, path, body, sess)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		if resp.StatusCode < http.StatusBadRequest {
			return &Result{Success: true}, nil
		}
		return nil, fmt.Errorf("backend returned %s", resp.Status)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		res.Success = false
	}
	return &res, nil
}

func cookieStrings(cookies []*http.Cookie) []string {
	out := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		out = append(out, ck.Name+"="+ck.Value)
	}
	return out
}
