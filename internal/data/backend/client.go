// Package backend is the HTTP client for the rentoverse REST API. Every
// data read and write of this frontend crosses this boundary; there is no
// local persistence, caching, or retry.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// APIError is a non-2xx backend response. Body is the plain-text message
// the backend sent; it is shown to the user verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsAPIError unwraps a backend rejection from any error chain.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	for err != nil {
		if e, ok := err.(*APIError); ok {
			apiErr = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return apiErr, apiErr != nil
}

// UserMessage maps an error to the text shown to the user: the backend's
// own words for a rejection, a generic line for transport failures.
func UserMessage(err error) string {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Error()
	}
	return "Network error. Please try again."
}

// Client is the shared transport under every resource client.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log.With(zap.String("component", "backend")),
	}
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do runs one request and returns the response body. Non-2xx responses come
// back as *APIError carrying the verbatim body text.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.log.Warn("Backend rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
			zap.String("body", string(data)))
		return nil, &APIError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, query, "", nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// postJSON sends a JSON payload and returns the raw response body; several
// endpoints answer with plain text rather than JSON.
func (c *Client) postJSON(ctx context.Context, path string, query url.Values, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", path, err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, http.MethodPost, path, query, "application/json", body)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (c *Client) postMultipart(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, contentType, body)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}
