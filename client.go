package supabase

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/supabase-community/functions-go"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/postgrest-go"
	realtimego "github.com/overseedio/realtime-go"
	storage_go "github.com/supabase-community/storage-go"
	"golang.org/x/net/http/httpguts"
)

// Client is the main Supabase client. It composes the supabase-community
// clients behind a single configuration surface:
//
//   - Database queries via PostgREST: From and Rpc
//   - Realtime subscriptions: Realtime
//   - Auth (GoTrue): Auth handle and the sign-in conveniences
//   - Storage: Storage handle and StorageProvider
//   - Edge Functions: Functions handle and FunctionsProvider
//
// A Client is immutable after construction and safe for concurrent use.
// Use WithJWT to derive an independent client scoped to a user token.
type Client struct {
	config Config

	rest *postgrest.Client

	// Auth is the GoTrue client bound to this project's auth endpoint.
	Auth gotrue.Client

	// Storage is the storage client bound to this project's storage endpoint.
	Storage *storage_go.Client

	// Functions is the edge functions client for this project.
	Functions *functions.Client

	http   *http.Client
	logger Logger

	realtimeOnce sync.Once
	realtime     *realtimego.Client
	realtimeErr  error
}

// NewClient creates a client from a project URL and API key, with default
// configuration. It is shorthand for NewConfig followed by
// NewClientWithConfig and fails under the same conditions.
func NewClient(baseURL, apiKey string) (*Client, error) {
	cfg, err := NewConfig(baseURL, apiKey)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig builds a client from a custom configuration.
//
// Every wrapped client is bound to its service URL derived from the base URL
// and receives the header set apikey: <key> plus Authorization: Bearer <key>
// (or the configured JWT), merged with any custom headers. Construction
// performs no network I/O.
func NewClientWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, NewInvalidConfigurationError("config is required")
	}
	if err := validateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, NewInvalidConfigurationError("api key is required")
	}

	bearer := cfg.APIKey
	if cfg.JWT != "" {
		bearer = cfg.JWT
	}

	headers := map[string]string{
		"X-Client-Info": "supabase-client-go/" + Version,
		"apikey":        cfg.APIKey,
		"Authorization": "Bearer " + bearer,
	}
	for name, value := range cfg.Headers {
		headers[name] = value
	}
	for name, value := range headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, NewClientInitError("invalid header name: "+name, nil)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, NewClientInitError("invalid value for header "+name, nil)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	schema := cfg.Schema
	if schema == "" {
		schema = defaultSchema
	}

	rest := postgrest.NewClient(cfg.RestURL(), schema, headers)
	if rest.ClientError != nil {
		return nil, NewClientInitError("failed to create postgrest client", rest.ClientError)
	}

	client := &Client{
		config:    *cfg.clone(),
		rest:      rest,
		Auth:      gotrue.New(projectReference(cfg.BaseURL), cfg.APIKey).WithCustomGoTrueURL(cfg.AuthURL()),
		Storage:   storage_go.NewClient(cfg.StorageURL(), bearer, headers),
		Functions: functions.NewClient(cfg.FunctionsURL(), bearer, headers),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &headerTransport{headers: headers},
		},
		logger: logger,
	}
	if cfg.JWT != "" {
		client.Auth = client.Auth.WithToken(cfg.JWT)
	}

	logger.Debug("supabase client created", "url", cfg.BaseURL, "schema", schema)
	return client, nil
}

// From returns the wrapped PostgREST query builder scoped to a table. All
// filter, order, limit and mutation semantics come from postgrest-go.
func (c *Client) From(table string) *postgrest.QueryBuilder {
	return c.rest.From(table)
}

// Rpc invokes a stored procedure through PostgREST. The body is forwarded
// verbatim; count may be "" or one of the PostgREST count strategies.
func (c *Client) Rpc(name, count string, body interface{}) string {
	return c.rest.Rpc(name, count, body)
}

// Rest returns the underlying PostgREST client for direct access.
func (c *Client) Rest() *postgrest.Client {
	return c.rest
}

// HTTP returns an HTTP client that carries this client's default headers and
// timeout. Useful for custom requests against Supabase APIs.
func (c *Client) HTTP() *http.Client {
	return c.http
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return *c.config.clone()
}

// WithJWT derives a client for requests on behalf of a signed-in user. The
// derived client sends Authorization: Bearer <token> while the apikey header
// keeps identifying the project, which is what Supabase row level security
// expects. The receiver is not modified; both clients stay usable.
func (c *Client) WithJWT(token string) (*Client, error) {
	if token == "" {
		return nil, NewInvalidConfigurationError("jwt is required")
	}
	cfg := c.config.clone().WithJWT(token)
	derived, err := NewClientWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("derived authenticated client", "url", cfg.BaseURL)
	return derived, nil
}

// projectReference extracts the project ref from a Supabase project URL, e.g.
// "abc" from https://abc.supabase.co. GoTrue only uses it when no custom URL
// is set, but it keeps the handle well-formed for hosted projects.
func projectReference(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	host := u.Hostname()
	if ref, ok := strings.CutSuffix(host, ".supabase.co"); ok {
		return ref
	}
	return host
}
