package supabase

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// stubProject stands in for a Supabase project; it records every request and
// answers with the given JSON body.
type stubProject struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newStubProject(body string) *stubProject {
	return newStubProjectWithStatus(http.StatusOK, body)
}

func newStubProjectWithStatus(status int, body string) *stubProject {
	stub := &stubProject{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		stub.requests = append(stub.requests, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   data,
		})
		stub.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	return stub
}

func (s *stubProject) Close() { s.server.Close() }

func (s *stubProject) URL() string { return s.server.URL }

func (s *stubProject) last(t *testing.T) capturedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("expected at least one request against the stub")
	}
	return s.requests[len(s.requests)-1]
}

func TestNewClient_CredentialHeaders(t *testing.T) {
	stub := newStubProject("[]")
	defer stub.Close()

	client, err := NewClient(stub.URL(), "anon123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, _, err = client.From("users").Select("*", "", false).Execute()
	if err != nil {
		t.Fatalf("expected query to succeed, got %v", err)
	}

	req := stub.last(t)
	if req.Header.Get("apikey") != "anon123" {
		t.Fatalf("expected apikey anon123, got %q", req.Header.Get("apikey"))
	}
	if req.Header.Get("Authorization") != "Bearer anon123" {
		t.Fatalf("expected Authorization Bearer anon123, got %q", req.Header.Get("Authorization"))
	}
}

func TestNewClient_InvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		baseURL string
		apiKey  string
	}{
		{"empty url", "", "key"},
		{"empty key", "https://example.supabase.co", ""},
		{"relative url", "users/all", "key"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(tc.baseURL, tc.apiKey)
			if err == nil {
				t.Fatal("expected construction to fail")
			}
			if !IsType(err, ErrorTypeInvalidConfiguration) {
				t.Fatalf("expected invalid_configuration error, got %v", err)
			}
			if client != nil {
				t.Fatal("expected no client on failure")
			}
		})
	}
}

func TestNewClientWithConfig_NilConfig(t *testing.T) {
	_, err := NewClientWithConfig(nil)
	if !IsType(err, ErrorTypeInvalidConfiguration) {
		t.Fatalf("expected invalid_configuration error, got %v", err)
	}
}

func TestNewClientWithConfig_BadHeaderValue(t *testing.T) {
	cfg, err := NewConfig("https://example.supabase.co", "key")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.WithHeader("X-Test", "bad\nvalue")

	_, err = NewClientWithConfig(cfg)
	if !IsType(err, ErrorTypeClientInit) {
		t.Fatalf("expected client_init error, got %v", err)
	}
}

func TestNewClientWithConfig_BadHeaderName(t *testing.T) {
	cfg, err := NewConfig("https://example.supabase.co", "key")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.WithHeader("bad header", "value")

	_, err = NewClientWithConfig(cfg)
	if !IsType(err, ErrorTypeClientInit) {
		t.Fatalf("expected client_init error, got %v", err)
	}
}

func TestNewClientWithConfig_MalformedKey(t *testing.T) {
	cfg := &Config{BaseURL: "https://example.supabase.co", APIKey: "key\nwith-newline"}

	_, err := NewClientWithConfig(cfg)
	if !IsType(err, ErrorTypeClientInit) {
		t.Fatalf("expected client_init error, got %v", err)
	}
}

func TestNewClientWithConfig_CustomHeaderSent(t *testing.T) {
	stub := newStubProject("[]")
	defer stub.Close()

	cfg, err := NewConfig(stub.URL(), "anon123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.WithHeader("X-Custom-Header", "value")

	client, err := NewClientWithConfig(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, _, err = client.From("users").Select("*", "", false).Execute()
	if err != nil {
		t.Fatalf("expected query to succeed, got %v", err)
	}

	req := stub.last(t)
	if req.Header.Get("X-Custom-Header") != "value" {
		t.Fatalf("expected custom header sent, got %q", req.Header.Get("X-Custom-Header"))
	}
	if req.Header.Get("X-Client-Info") != "supabase-client-go/"+Version {
		t.Fatalf("expected client info header, got %q", req.Header.Get("X-Client-Info"))
	}
}

func TestWithJWT_DerivedClientHeaders(t *testing.T) {
	stub := newStubProject("[]")
	defer stub.Close()

	client, err := NewClient(stub.URL(), "anon123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	derived, err := client.WithJWT("user-jwt")
	if err != nil {
		t.Fatalf("expected derivation to succeed, got %v", err)
	}

	_, _, err = derived.From("users").Select("*", "", false).Execute()
	if err != nil {
		t.Fatalf("expected derived query to succeed, got %v", err)
	}
	req := stub.last(t)
	if req.Header.Get("apikey") != "anon123" {
		t.Fatalf("expected derived apikey anon123, got %q", req.Header.Get("apikey"))
	}
	if req.Header.Get("Authorization") != "Bearer user-jwt" {
		t.Fatalf("expected derived Authorization Bearer user-jwt, got %q", req.Header.Get("Authorization"))
	}

	// The original client keeps issuing requests with the anon key.
	_, _, err = client.From("users").Select("*", "", false).Execute()
	if err != nil {
		t.Fatalf("expected original query to succeed, got %v", err)
	}
	req = stub.last(t)
	if req.Header.Get("Authorization") != "Bearer anon123" {
		t.Fatalf("expected original Authorization Bearer anon123, got %q", req.Header.Get("Authorization"))
	}
}

func TestWithJWT_EmptyToken(t *testing.T) {
	client, err := NewClient("https://example.supabase.co", "anon123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = client.WithJWT("")
	if !IsType(err, ErrorTypeInvalidConfiguration) {
		t.Fatalf("expected invalid_configuration error, got %v", err)
	}
}

func TestClient_ConfigCopy(t *testing.T) {
	cfg, err := NewConfig("https://example.supabase.co", "key")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.WithTimeout(45 * time.Second).WithHeader("X-Test", "value")

	client, err := NewClientWithConfig(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := client.Config()
	if got.Timeout != 45*time.Second {
		t.Fatalf("expected timeout 45s, got %v", got.Timeout)
	}

	// Mutating the copy must not leak into the client.
	got.Headers["X-Test"] = "changed"
	if client.Config().Headers["X-Test"] != "value" {
		t.Fatal("expected client config to be isolated from returned copies")
	}
}

func TestProjectReference(t *testing.T) {
	cases := map[string]string{
		"https://abc.supabase.co":  "abc",
		"http://localhost:54321":   "localhost",
		"https://db.example.com":   "db.example.com",
		"https://abc.supabase.co/": "abc",
	}
	for in, want := range cases {
		if got := projectReference(in); got != want {
			t.Fatalf("expected ref %q for %q, got %q", want, in, got)
		}
	}
}
