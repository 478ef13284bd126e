package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// FunctionsProvider returns an edge-function invoker that issues requests
// through the client's HTTP handle, so calls carry the same credential
// headers and timeout as everything else.
func (c *Client) FunctionsProvider() FunctionsProvider {
	return &functionsInvoker{
		http:    c.http,
		baseURL: c.config.FunctionsURL(),
	}
}

type functionsInvoker struct {
	http    *http.Client
	baseURL string
}

var _ FunctionsProvider = (*functionsInvoker)(nil)

func (f *functionsInvoker) Invoke(name string, body interface{}) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode function body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(http.MethodPost, f.baseURL+"/"+name, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("function %q returned status %d: %s", name, resp.StatusCode, data)
	}
	return data, nil
}
