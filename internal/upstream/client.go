// Package upstream is the HTTP client for the external content API that
// owns all persistence and authentication. It plays the role a SQL
// repository layer would otherwise play: one file per resource, each
// satisfying its domain repository interface.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/egemed/clinic_backend/internal/domain"
)

const (
	headerWebsiteID = "X-Website-ID"
)

// APIError is the typed error raised for every non-2xx upstream response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.StatusCode)
}

// TokenSource supplies the admin bearer token, empty when logged out.
type TokenSource interface {
	Token() string
}

// Client issues every request against the upstream API. It attaches the
// tenant header to every call and the bearer token to calls made while an
// admin session is live. There is no retry policy: a failed call surfaces
// immediately to the caller.
type Client struct {
	baseURL   string
	websiteID string
	tokens    TokenSource
	http      *http.Client
}

func NewClient(baseURL, websiteID string, tokens TokenSource) *Client {
	return &Client{
		baseURL:   baseURL,
		websiteID: websiteID,
		tokens:    tokens,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// request sends method path with an optional JSON body and returns the raw
// response body. A 204 yields an empty payload without touching the body.
func (c *Client) request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

// requestMultipart sends a multipart/form-data body built from fields plus
// an optional file part. The content type carries the writer's boundary, so
// no JSON content type is set.
func (c *Client) requestMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, filename string, file []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			return nil, fmt.Errorf("create form file: %w", err)
		}
		if _, err := part.Write(file); err != nil {
			return nil, fmt.Errorf("write form file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if c.baseURL == "" {
		return nil, &APIError{StatusCode: 0, Message: "api base url is not configured"}
	}
	if c.websiteID == "" {
		return nil, &APIError{StatusCode: 0, Message: "website id is not configured"}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerWebsiteID, c.websiteID)
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return json.RawMessage("{}"), nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(payload)}
	}
	return payload, nil
}

// errorMessage pulls a human message out of an error body, falling back to a
// generic one when the body carries none.
func errorMessage(payload []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return "request failed"
}

// decodeList normalizes the two collection shapes the upstream API answers
// with (bare array, or {data, total} envelope) into one List value.
func decodeList[T any](payload json.RawMessage) (domain.List[T], error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var data []T
		if err := json.Unmarshal(trimmed, &data); err != nil {
			return domain.List[T]{}, fmt.Errorf("decode list: %w", err)
		}
		return domain.List[T]{Data: data, Total: len(data)}, nil
	}
	var envelope domain.List[T]
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return domain.List[T]{}, fmt.Errorf("decode list envelope: %w", err)
	}
	if envelope.Data == nil {
		envelope.Data = []T{}
	}
	return envelope, nil
}

func decodeOne[T any](payload json.RawMessage) (*T, error) {
	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
