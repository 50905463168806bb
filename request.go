package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// apiURL resolves a resource path against the REST prefix of an API family.
// The path may carry a literal query string, e.g. "/board/4/issue?startAt=50".
func (c *Client) apiURL(family, path string) (*url.URL, error) {
	rel, err := url.Parse(fmt.Sprintf("/rest/%s/latest%s", family, path))
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}

	return c.baseURL.ResolveReference(rel), nil
}

// newRequest creates a new HTTP request against an API family.
func (c *Client) newRequest(
	ctx context.Context,
	method, family, path string,
	body any,
) (*http.Request, error) {
	u, err := c.apiURL(family, path)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// doJSON executes the request and decodes the JSON response into v.
func (c *Client) doJSON(req *http.Request, v any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &RequestError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return nil
}

// do executes the request with authentication and status handling.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.auth != nil {
		if err := c.auth.authenticate(req); err != nil {
			return nil, fmt.Errorf("authenticate request: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Err(err).
			Msg("request failed")

		return nil, &RequestError{
			Method: req.Method,
			Path:   req.URL.Path,
			Err:    err,
		}
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}

		return nil, &RequestError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Err: fmt.Errorf(
				"%s: %d, %w",
				http.StatusText(resp.StatusCode),
				resp.StatusCode,
				ErrStatus,
			),
		}
	}

	return resp, nil
}

// get performs a GET against an API family and decodes the response into v.
func (c *Client) get(ctx context.Context, family, path string, v any) error {
	req, err := c.newRequest(ctx, http.MethodGet, family, path, nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, v)
}

// post performs a POST against an API family and decodes the response into v.
func (c *Client) post(ctx context.Context, family, path string, body, v any) error {
	req, err := c.newRequest(ctx, http.MethodPost, family, path, body)
	if err != nil {
		return err
	}

	return c.doJSON(req, v)
}
