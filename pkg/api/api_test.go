package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubel606/Blog-Admin/internal/errs"
	"github.com/kirubel606/Blog-Admin/pkg/creds"
	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type staticSource struct {
	token creds.AccessToken
}

func (s staticSource) AccessToken() creds.AccessToken {
	return s.token
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw, err := gateway.New(server.URL, staticSource{token: "T1"}, 2*time.Second)
	require.NoError(t, err)

	return New(gw)
}

func TestUnwrapList(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"nested result", `{"results":{"result":[{"id":1}]}}`, `[{"id":1}]`},
		{"bare array", `[{"id":2}]`, `[{"id":2}]`},
		{"results array", `{"results":[{"id":3}]}`, `[{"id":3}]`},
		{"empty object", `{}`, `[]`},
		{"empty body", ``, `[]`},
		{"results object without result", `{"results":{"count":0}}`, `[]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.JSONEq(t, tc.want, string(unwrapList([]byte(tc.body))))
		})
	}
}

func TestListUnwrapsEveryEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/news/all/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":{"result":[{"id":1,"title":"first"}]}}`))
	})
	mux.HandleFunc("/events/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":2,"title":"launch"}]`))
	})
	mux.HandleFunc("/faq/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":3,"question":"why"}]}`))
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	news, err := client.News.All(ctx)
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "first", news[0].Title)

	events, err := client.Events.All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "launch", events[0].Title)

	faqs, err := client.FAQs.All(ctx)
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	assert.Equal(t, "why", faqs[0].Question)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var got string
	mux := http.NewServeMux()
	mux.HandleFunc("/quotes/", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, mux)

	_, err := client.Quotes.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer T1", got)
}

func TestServerErrorCarriesDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/news/all/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"You do not have permission to perform this action."}`))
	})

	client := newTestClient(t, mux)

	_, err := client.News.All(context.Background())
	require.Error(t, err)

	code, ok := errs.ExtractHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, err.Error(), "You do not have permission")
}

func TestUsersEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/all/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users":[{"id":7,"name":"Alice","email":"alice@example.com","role":"editor","is_admin":true}]}`))
	})

	client := newTestClient(t, mux)

	users, err := client.Users.All(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
	assert.True(t, users[0].IsAdmin)
}

func TestNewsCreateSubmitsForm(t *testing.T) {
	var fields map[string][]string
	var method string
	mux := http.NewServeMux()
	mux.HandleFunc("/news/newspost/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = r.MultipartForm.Value
		method = r.Method
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":10,"title":"hello","status":"draft"}`))
	})

	client := newTestClient(t, mux)

	created, err := client.News.Create(context.Background(), NewsInput{
		Title:    "hello",
		Category: "3",
		Status:   "draft",
		HasVideo: false,
		Iframe:   "ignored without video",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, []string{"hello"}, fields["title"])
	assert.Equal(t, []string{"3"}, fields["category"])

	// the iframe is only submitted for video articles
	_, hasIframe := fields["iframe"]
	assert.False(t, hasIframe)
}

func TestFAQUpdateUsesPatch(t *testing.T) {
	var method, contentType, path string
	mux := http.NewServeMux()
	mux.HandleFunc("/faq/5/", func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"id":5,"question":"updated"}`))
	})

	client := newTestClient(t, mux)

	updated, err := client.FAQs.Update(context.Background(), 5, FAQInput{Question: "updated"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "/faq/5/", path)
	assert.Equal(t, "updated", updated.Question)
}

func TestEventUpdateSubmitsForm(t *testing.T) {
	var method string
	var fields map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/events/4/", func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = r.MultipartForm.Value
		_, _ = w.Write([]byte(`{"id":4,"title":"moved","status":"upcoming"}`))
	})

	client := newTestClient(t, mux)

	updated, err := client.Events.Update(context.Background(), 4, EventInput{
		Title:  "moved",
		Type:   "conference",
		Status: "upcoming",
		IsLive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, []string{"moved"}, fields["title"])
	assert.Equal(t, []string{"true"}, fields["is_live"])
	assert.Equal(t, "moved", updated.Title)
}

func TestResourceUpdateSubmitsForm(t *testing.T) {
	var method string
	var fields map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/resources/6/", func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = r.MultipartForm.Value
		_, _ = w.Write([]byte(`{"id":6,"title":"annual report"}`))
	})

	client := newTestClient(t, mux)

	updated, err := client.Resources.Update(context.Background(), 6, ResourceInput{
		Title:          "annual report",
		Publisher:      "acme",
		Classification: "publication",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, []string{"annual report"}, fields["title"])
	// the backend spells this field "plublisher"
	assert.Equal(t, []string{"acme"}, fields["plublisher"])
	assert.Equal(t, "annual report", updated.Title)
}

func TestQuotesUseFormData(t *testing.T) {
	var createMethod, updateMethod string
	var createFields, updateFields map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/quotes/", func(w http.ResponseWriter, r *http.Request) {
		createMethod = r.Method
		require.NoError(t, r.ParseMultipartForm(1<<20))
		createFields = r.MultipartForm.Value
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":8,"quote":"onward","author":"Alice"}`))
	})
	mux.HandleFunc("/quotes/8/", func(w http.ResponseWriter, r *http.Request) {
		updateMethod = r.Method
		require.NoError(t, r.ParseMultipartForm(1<<20))
		updateFields = r.MultipartForm.Value
		_, _ = w.Write([]byte(`{"id":8,"quote":"ever onward","author":"Alice"}`))
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	created, err := client.Quotes.Create(ctx, QuoteInput{Quote: "onward", Author: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, createMethod)
	assert.Equal(t, []string{"onward"}, createFields["quote"])
	assert.Equal(t, int64(8), created.ID)

	updated, err := client.Quotes.Update(ctx, 8, QuoteInput{Quote: "ever onward", Author: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, updateMethod)
	assert.Equal(t, []string{"ever onward"}, updateFields["quote"])
	assert.Equal(t, "ever onward", updated.Quote)
}

func TestDeleteToleratesEmptyBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/categories/9/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, mux)

	assert.NoError(t, client.Categories.Delete(context.Background(), 9))
}

func TestSettingsGetUnwrapsSingleRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/settings/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"email":"info@example.com","location":"Addis Ababa"}]`))
	})

	client := newTestClient(t, mux)

	settings, err := client.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), settings.ID)
	assert.Equal(t, "info@example.com", settings.Email)
}
