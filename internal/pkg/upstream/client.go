package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/coerce"
)

const maxErrorBody = 64 << 10

// Client performs JSON requests against one external service. Every request
// goes through the same builder so credentials are injected uniformly.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	defaults   []Credential
}

// NewClient creates a client for the service at baseURL. When httpClient is
// nil a client with a 30 second timeout is used.
func NewClient(name, baseURL string, httpClient *http.Client, defaults ...Credential) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		defaults:   defaults,
	}
}

// Name returns the service name used in errors and logs.
func (c *Client) Name() string { return c.name }

// BaseURL returns the service base URL without trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// FilePart is one file of a multipart body.
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// Multipart is a multipart/form-data body.
type Multipart struct {
	Fields map[string]string
	Files  []FilePart
}

// Request describes one call. Exactly one of Body and Form may be set.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        any
	Form        *Multipart
	Credentials []Credential
}

// URL builds the absolute URL of path with query.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do sends the request and returns the decoded JSON payload (numbers kept as
// json.Number). An empty 2xx body yields a nil payload.
func (c *Client) Do(ctx context.Context, r Request) (any, error) {
	req, err := c.build(ctx, r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "Upstream request failed", "service", c.name, "method", r.Method, "path", r.Path, "error", err)
		return nil, &TransportError{Service: c.name, Err: err}
	}
	defer resp.Body.Close()

	slog.DebugContext(ctx, "Upstream request", "service", c.name, "method", r.Method, "path", r.Path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Service: c.name, Code: resp.StatusCode, Message: messageOf(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Service: c.name, Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	payload, err := decodeJSON(body)
	if err != nil {
		return nil, &DecodeError{Service: c.name, Err: err}
	}

	if obj, ok := payload.(coerce.Object); ok {
		if success, ok := obj["success"].(bool); ok && !success {
			return nil, &RejectedError{Service: c.name, Message: coerce.StringOr(coerce.First(obj, "message", "error"), "request was not successful")}
		}
	}

	return payload, nil
}

// Get is a shorthand for a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, creds ...Credential) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Credentials: creds})
}

// Post is a shorthand for a JSON POST request.
func (c *Client) Post(ctx context.Context, path string, body any, creds ...Credential) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Credentials: creds})
}

func (c *Client) build(ctx context.Context, r Request) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)
	switch {
	case r.Form != nil:
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for k, v := range r.Form.Fields {
			if err := mw.WriteField(k, v); err != nil {
				return nil, fmt.Errorf("write form field %s: %w", k, err)
			}
		}
		for _, f := range r.Form.Files {
			part, err := mw.CreateFormFile(f.Field, f.FileName)
			if err != nil {
				return nil, fmt.Errorf("create form file %s: %w", f.Field, err)
			}
			if _, err := io.Copy(part, f.Content); err != nil {
				return nil, fmt.Errorf("copy form file %s: %w", f.Field, err)
			}
		}
		if err := mw.Close(); err != nil {
			return nil, fmt.Errorf("close multipart writer: %w", err)
		}
		body = buf
		contentType = mw.FormDataContentType()
	case r.Body != nil:
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL(r.Path, r.Query), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cred := range c.defaults {
		cred.Apply(req)
	}
	for _, cred := range r.Credentials {
		cred.Apply(req)
	}
	return req, nil
}

func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	return payload, nil
}

func messageOf(body []byte) string {
	payload, err := decodeJSON(body)
	if err != nil {
		return ""
	}
	obj, ok := payload.(coerce.Object)
	if !ok {
		return ""
	}
	if msg := coerce.String(coerce.First(obj, "message", "error")); msg != "" {
		return msg
	}
	if inner, ok := obj["error"].(coerce.Object); ok {
		return coerce.String(inner["message"])
	}
	return ""
}
