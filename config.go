package supabase

import (
	"net/url"
	"strings"
	"time"
)

// Paths of the individual Supabase services, relative to the project URL.
const (
	restPath      = "/rest/v1"
	authPath      = "/auth/v1"
	storagePath   = "/storage/v1"
	functionsPath = "/functions/v1"
	realtimePath  = "/realtime/v1"
)

const (
	defaultSchema  = "public"
	defaultTimeout = 30 * time.Second
)

// Config holds the settings used to construct a Client. Build one with
// NewConfig, adjust it with the With* setters, then hand it to
// NewClientWithConfig. A Config must not be modified after a Client has been
// constructed from it; the setters are meant for the still-unshared value.
type Config struct {
	// BaseURL is the Supabase project URL, e.g. https://xyzcompany.supabase.co
	BaseURL string

	// APIKey is the project anon or service role key.
	APIKey string

	// JWT optionally carries a per-user token. When set, the Authorization
	// header sent to every service is "Bearer <JWT>" while the apikey header
	// keeps identifying the project.
	JWT string

	// Schema selects the PostgREST schema (default "public").
	Schema string

	// Timeout applies to requests issued through the client's raw HTTP handle.
	Timeout time.Duration

	// Headers are extra headers attached to every request. They override the
	// built-in headers on name collision.
	Headers map[string]string

	// Logger receives construction and lifecycle events. Defaults to a no-op
	// logger; pass NewLogger to see output.
	Logger Logger
}

// NewConfig creates a configuration with defaults applied. It fails when the
// base URL is empty or not an absolute http(s) URL, or when the API key is
// empty.
func NewConfig(baseURL, apiKey string) (*Config, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, NewInvalidConfigurationError("api key is required")
	}

	return &Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Schema:  defaultSchema,
		Timeout: defaultTimeout,
		Headers: map[string]string{},
		Logger:  noopLogger{},
	}, nil
}

// WithSchema sets the PostgREST schema.
func (c *Config) WithSchema(schema string) *Config {
	c.Schema = schema
	return c
}

// WithTimeout sets the request timeout for the raw HTTP handle.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithHeader adds a custom header. Repeated calls with the same name
// overwrite the prior value.
func (c *Config) WithHeader(name, value string) *Config {
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
	c.Headers[name] = value
	return c
}

// WithJWT sets a per-user token for authenticated requests.
func (c *Config) WithJWT(jwt string) *Config {
	c.JWT = jwt
	return c
}

// WithLogger sets the logger used by clients built from this config.
func (c *Config) WithLogger(logger Logger) *Config {
	c.Logger = logger
	return c
}

// RestURL returns the PostgREST endpoint for this project.
func (c *Config) RestURL() string {
	return c.baseTrimmed() + restPath
}

// AuthURL returns the GoTrue endpoint for this project.
func (c *Config) AuthURL() string {
	return c.baseTrimmed() + authPath
}

// StorageURL returns the Storage endpoint for this project.
func (c *Config) StorageURL() string {
	return c.baseTrimmed() + storagePath
}

// FunctionsURL returns the Edge Functions endpoint for this project.
func (c *Config) FunctionsURL() string {
	return c.baseTrimmed() + functionsPath
}

// RealtimeURL returns the Realtime WebSocket endpoint for this project,
// derived by swapping the scheme: http becomes ws, https becomes wss.
func (c *Config) RealtimeURL() string {
	base := c.baseTrimmed()
	if strings.HasPrefix(base, "https://") {
		base = "wss://" + strings.TrimPrefix(base, "https://")
	} else if strings.HasPrefix(base, "http://") {
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + realtimePath
}

func (c *Config) baseTrimmed() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// clone returns an independent copy, including the header map. Derived
// clients rely on this so the original config is never shared.
func (c *Config) clone() *Config {
	dup := *c
	dup.Headers = make(map[string]string, len(c.Headers))
	for k, v := range c.Headers {
		dup.Headers[k] = v
	}
	return &dup
}

func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return NewInvalidConfigurationError("base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return NewInvalidConfigurationError("base URL is not a valid URL", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewInvalidConfigurationError("base URL must be an absolute http(s) URL")
	}
	return nil
}
