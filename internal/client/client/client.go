package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/common"
)

// APIClient is safe for concurrent use.
type APIClient struct {
	baseURL string
	http    *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// LoggedIn reports whether the client holds a token pair.
func (c *APIClient) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken != ""
}

func (c *APIClient) setTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken, c.refreshToken = access, refresh
}

func (c *APIClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// do sends a JSON request and decodes a JSON answer into out.
func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	resp, err := c.roundTrip(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return decodeJSON(resp.Body, out)
}

func decodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// roundTrip returns a 2xx response whose body the caller must close. An
// expired access token triggers one refresh and one retry.
func (c *APIClient) roundTrip(ctx context.Context, method, path string, in any) (*http.Response, error) {
	resp, err := c.send(ctx, method, path, in)
	if err != nil {
		return nil, err
	}

	apiErr := responseError(resp)
	if apiErr == nil {
		return resp, nil
	}

	if _, refresh := c.tokens(); !apiErr.tokenExpired() || refresh == "" {
		return nil, apiErr
	}
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	if resp, err = c.send(ctx, method, path, in); err != nil {
		return nil, err
	}
	if apiErr := responseError(resp); apiErr != nil {
		return nil, apiErr
	}
	return resp, nil
}

func (c *APIClient) send(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access, _ := c.tokens(); access != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// responseError consumes and closes the body of a non-2xx response.
func responseError(resp *http.Response) *APIError {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{}
	_ = json.NewDecoder(resp.Body).Decode(apiErr)
	apiErr.Status = resp.StatusCode
	return apiErr
}

func filenameFrom(header string) string {
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}

func queryPath(path, key, value string) string {
	return path + "?" + url.Values{key: {value}}.Encode()
}
