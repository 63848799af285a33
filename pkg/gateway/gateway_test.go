package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubel606/Blog-Admin/pkg/creds"
)

// fakeSource swaps tokens mid-test the way a background renewal does.
type fakeSource struct {
	mu    sync.Mutex
	token creds.AccessToken
}

func (s *fakeSource) AccessToken() creds.AccessToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSource) set(token creds.AccessToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func newEchoServer(t *testing.T) (*httptest.Server, *[]http.Header) {
	t.Helper()

	var headers []http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Clone())
		_ = json.NewEncoder(w).Encode(map[string]string{"path": r.URL.String(), "method": r.Method})
	}))
	t.Cleanup(server.Close)

	return server, &headers
}

func TestBearerHeaderInjected(t *testing.T) {
	server, headers := newEchoServer(t)
	source := &fakeSource{token: "T1"}

	c, err := New(server.URL, source, time.Second)
	require.NoError(t, err)

	code, _, err := c.Get(context.Background(), "/news/all/", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	require.Len(t, *headers, 1)
	assert.Equal(t, "Bearer T1", (*headers)[0].Get("Authorization"))
}

func TestNoHeaderWhenLoggedOut(t *testing.T) {
	server, headers := newEchoServer(t)
	source := &fakeSource{}

	c, err := New(server.URL, source, time.Second)
	require.NoError(t, err)

	// the request still goes out; rejecting it is the server's call
	code, _, err := c.Get(context.Background(), "/news/all/", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, (*headers)[0].Get("Authorization"))
}

func TestLiveTokenReadPerRequest(t *testing.T) {
	server, headers := newEchoServer(t)
	source := &fakeSource{token: "T1"}

	c, err := New(server.URL, source, time.Second)
	require.NoError(t, err)

	_, _, err = c.Get(context.Background(), "/a/", nil)
	require.NoError(t, err)

	// a renewal replaced the token between two requests
	source.set("T2")

	_, _, err = c.Get(context.Background(), "/b/", nil)
	require.NoError(t, err)

	require.Len(t, *headers, 2)
	assert.Equal(t, "Bearer T1", (*headers)[0].Get("Authorization"))
	assert.Equal(t, "Bearer T2", (*headers)[1].Get("Authorization"))
}

func TestUnauthorizedPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token expired"}`))
	}))
	t.Cleanup(server.Close)

	source := &fakeSource{token: "stale"}
	c, err := New(server.URL, source, time.Second)
	require.NoError(t, err)

	// the gateway reports the 401 unchanged, it never signs out or retries
	code, body, err := c.Get(context.Background(), "/news/all/", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.JSONEq(t, `{"detail":"token expired"}`, string(body))
	assert.Equal(t, creds.AccessToken("stale"), source.AccessToken())
}

func TestQueryEncoding(t *testing.T) {
	server, _ := newEchoServer(t)
	c, err := New(server.URL, &fakeSource{}, time.Second)
	require.NoError(t, err)

	query := url.Values{}
	query.Set("title", "annual report")

	_, body, err := c.Get(context.Background(), "/news/search/", query)
	require.NoError(t, err)

	var echoed map[string]string
	require.NoError(t, json.Unmarshal(body, &echoed))
	assert.Equal(t, "/news/search/?title=annual+report", echoed["path"])
}

func TestJSONVerbs(t *testing.T) {
	var gotBody []byte
	var gotContentType, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	c, err := New(server.URL, &fakeSource{token: "T1"}, time.Second)
	require.NoError(t, err)

	code, _, err := c.Post(context.Background(), "/faq/", map[string]string{"question": "q"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"question":"q"}`, string(gotBody))

	_, _, err = c.Patch(context.Background(), "/faq/1/", map[string]string{"answer": "a"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)

	_, _, err = c.Delete(context.Background(), "/faq/1/")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestSubmitMultipart(t *testing.T) {
	var gotFields map[string][]string
	var gotFile []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = r.MultipartForm.Value

		f, _, err := r.FormFile("cover_image")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		gotFile, _ = io.ReadAll(f)

		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	c, err := New(server.URL, &fakeSource{token: "T1"}, time.Second)
	require.NoError(t, err)

	code, _, err := c.Submit(context.Background(), http.MethodPost, "/news/newspost/",
		map[string]string{"title": "hello", "status": "draft"},
		FileField{Field: "cover_image", Name: "cover.jpg", Content: strings.NewReader("jpegdata")},
	)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, []string{"hello"}, gotFields["title"])
	assert.Equal(t, []string{"draft"}, gotFields["status"])
	assert.Equal(t, "jpegdata", string(gotFile))
}
