// Package marketplace is the typed client for the simpleRentals REST API.
// Every operation takes a context, issues one HTTP request and decodes the
// authoritative response; nothing is cached across calls.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simplerentals/rentals-go/config"
	"github.com/simplerentals/rentals-go/util/tracing"
	"github.com/simplerentals/rentals-go/util/values"
)

const defaultTimeout = 30 * time.Second

// Client handles communication with the marketplace API.
type Client struct {
	BaseURL string
	Token   string
	Source  string
	Client  *http.Client
}

// New creates a client from config. The access token may be empty for
// unauthenticated browsing endpoints.
func New(cfg *config.Config) *Client {
	timeout := defaultTimeout
	if cfg.RequestTimeout > 0 {
		timeout = time.Duration(cfg.RequestTimeout) * time.Second
	}
	return &Client{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.AccessToken,
		Source:  cfg.RequestSource,
		Client:  &http.Client{Timeout: timeout},
	}
}

// errorBody is the shape the API uses for failure responses.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// do issues a single request and decodes the response into out (which may
// be nil for endpoints with empty responses). Failures come back as
// *APIError; a transport-level failure maps to KindNetworkFailure since no
// authoritative response was received.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	tc := tracing.New(c.Source)
	req.Header.Set(values.HeaderRequestID, tc.RequestID)
	req.Header.Set(values.HeaderRequestSource, tc.RequestSource)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetworkFailure, Detail: err.Error(), RequestID: tc.RequestID}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetworkFailure, Detail: err.Error(), RequestID: tc.RequestID}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Kind:       kindFromStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			RequestID:  tc.RequestID,
		}
		var eb errorBody
		if err := json.Unmarshal(bodyBytes, &eb); err == nil {
			apiErr.Detail = eb.Detail
			if apiErr.Detail == "" {
				apiErr.Detail = eb.Error
			}
		}
		return apiErr
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
