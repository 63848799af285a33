// Package gateway routes every outbound API call through one client
// that injects the live access token, so call sites never manage
// tokens themselves.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kirubel606/Blog-Admin/pkg/creds"
)

// TokenSource supplies the current access token. Satisfied by
// *session.Manager; the token is read at request time, never at
// construction time.
type TokenSource interface {
	AccessToken() creds.AccessToken
}

// Client wraps an http.Client whose transport attaches the bearer
// header. HTTP errors, including 401s on a stale token, pass through
// to callers untouched; the gateway never renews or signs out.
type Client struct {
	baseURL string
	source  TokenSource
	http    *http.Client
}

// FileField is one file part of a multipart submission.
type FileField struct {
	Field   string
	Name    string
	Content io.Reader
}

func New(baseURL string, source TokenSource, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("require baseURL")
	}

	if source == nil {
		return nil, errors.New("require token source")
	}

	if timeout == 0 {
		timeout = time.Second * 30
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		source:  source,
		http: &http.Client{
			Timeout: timeout,
			Transport: &bearerTransport{
				source: source,
				next:   http.DefaultTransport,
			},
		},
	}, nil
}

// bearerTransport reads the live token on every round trip. When no
// token is held the request goes out without the header and the
// server answers with its own authentication error.
type bearerTransport struct {
	source TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.source.AccessToken()
	if token == "" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+string(token))
	return t.next.RoundTrip(clone)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, err
	}

	return c.do(req)
}

func (c *Client) Post(ctx context.Context, path string, v any) (int, []byte, error) {
	return c.sendJSON(ctx, http.MethodPost, path, v)
}

func (c *Client) Put(ctx context.Context, path string, v any) (int, []byte, error) {
	return c.sendJSON(ctx, http.MethodPut, path, v)
}

func (c *Client) Patch(ctx context.Context, path string, v any) (int, []byte, error) {
	return c.sendJSON(ctx, http.MethodPatch, path, v)
}

func (c *Client) Delete(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, err
	}

	return c.do(req)
}

// Submit sends a multipart form, the shape the backend expects for
// create and update operations carrying images.
func (c *Client) Submit(ctx context.Context, method, path string, fields map[string]string, files ...FileField) (int, []byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return 0, nil, err
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return 0, nil, err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return 0, nil, errors.Wrapf(err, "failed to read file field %v", f.Field)
		}
	}

	if err := w.Close(); err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, v any) (int, []byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, body, nil
}
