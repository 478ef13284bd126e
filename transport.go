package supabase

import "net/http"

// headerTransport attaches the client's default header set to every request
// issued through the raw HTTP handle, so custom requests carry the same
// credentials as the wrapped clients. Explicitly set headers win.
type headerTransport struct {
	headers map[string]string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for name, value := range t.headers {
		if clone.Header.Get(name) == "" {
			clone.Header.Set(name, value)
		}
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
