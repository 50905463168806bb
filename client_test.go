package jira

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient spins up a test server and a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("https://example.atlassian.net")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !strings.HasPrefix(c.userAgent, "go-jira/") {
		t.Errorf("userAgent = %q, want go-jira/ prefix", c.userAgent)
	}
	if c.httpClient == nil {
		t.Error("expected a default HTTP client")
	}
	if c.auth != nil {
		t.Error("expected anonymous requests by default")
	}
}

func TestNew_Options(t *testing.T) {
	httpClient := &http.Client{}
	auth := BearerAuth{Token: "pat"}

	c, err := New(
		"https://example.atlassian.net",
		WithHTTPClient(httpClient),
		WithUserAgent("custom/1.0"),
		WithAuth(auth),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.httpClient != httpClient {
		t.Error("WithHTTPClient not applied")
	}
	if c.userAgent != "custom/1.0" {
		t.Errorf("userAgent = %q, want custom/1.0", c.userAgent)
	}
	if c.auth != auth {
		t.Error("WithAuth not applied")
	}
}

func TestClient_apiURL(t *testing.T) {
	c, err := New("https://example.atlassian.net")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name      string
		family    string
		path      string
		wantPath  string
		wantQuery string
	}{
		{
			name:     "core family",
			family:   CoreAPI,
			path:     "/issue/TEST-1",
			wantPath: "/rest/api/latest/issue/TEST-1",
		},
		{
			name:      "agile family with literal query",
			family:    AgileAPI,
			path:      "/board/4/issue?maxResults=2&startAt=2",
			wantPath:  "/rest/agile/latest/board/4/issue",
			wantQuery: "maxResults=2&startAt=2",
		},
		{
			name:     "agile family with empty query",
			family:   AgileAPI,
			path:     "/board?",
			wantPath: "/rest/agile/latest/board",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := c.apiURL(tt.family, tt.path)
			if err != nil {
				t.Fatalf("apiURL() error = %v", err)
			}

			if u.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", u.Path, tt.wantPath)
			}
			if u.RawQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", u.RawQuery, tt.wantQuery)
			}
			if u.Host != "example.atlassian.net" {
				t.Errorf("host = %q, want example.atlassian.net", u.Host)
			}
		})
	}
}

func TestClient_get_StatusError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such issue", http.StatusNotFound)
	}))

	err := c.get(context.Background(), CoreAPI, "/issue/MISSING-1", &Issue{})
	if err == nil {
		t.Fatal("expected an error")
	}

	if !errors.Is(err, ErrStatus) {
		t.Errorf("error = %v, want ErrStatus in chain", err)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", reqErr.StatusCode, http.StatusNotFound)
	}
	if reqErr.Method != http.MethodGet {
		t.Errorf("Method = %q, want GET", reqErr.Method)
	}
}

func TestClient_get_DecodeError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	err := c.get(context.Background(), CoreAPI, "/issue/TEST-1", &Issue{})
	if err == nil {
		t.Fatal("expected an error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
	if errors.Is(err, ErrStatus) {
		t.Error("decode failure should not report ErrStatus")
	}
}

func TestClient_get_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	server.Close()

	err = c.get(context.Background(), CoreAPI, "/issue/TEST-1", &Issue{})
	if err == nil {
		t.Fatal("expected an error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
	if reqErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for transport failures", reqErr.StatusCode)
	}
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotAuth, gotAgent, gotAccept string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("{}"))
	}))
	c.auth = BearerAuth{Token: "pat"}
	c.userAgent = "custom/1.0"

	if err := c.get(context.Background(), CoreAPI, "/issue/TEST-1", &Issue{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer pat" {
		t.Errorf("Authorization = %q, want Bearer pat", gotAuth)
	}
	if gotAgent != "custom/1.0" {
		t.Errorf("User-Agent = %q, want custom/1.0", gotAgent)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}
