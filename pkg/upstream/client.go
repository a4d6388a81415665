package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the aggregation API every platform route is forwarded to.
const DefaultBaseURL = "https://delirius-apiofc.vercel.app"

// Client issues the single outbound GET for a proxied request.
type Client struct {
	HTTP    HTTPClient
	BaseURL string
}

// Endpoint builds {BaseURL}{path}?url={sourceURL} with the source URL query-encoded.
func (c *Client) Endpoint(path, sourceURL string) string {
	params := url.Values{}
	params.Add("url", sourceURL)

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s%s?%s", strings.TrimRight(base, "/"), path, params.Encode())
}

// Get calls the upstream path for sourceURL and decodes the whole JSON body into dst.
// The HTTP status code is not interpreted; the payload's own status flag decides success.
func (c *Client) Get(ctx context.Context, path, sourceURL string, dst any) error {
	endpoint := c.Endpoint(path, sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		cerr := Body.Close()
		if cerr != nil {
			slog.Warn("Failed to close response body", "err", cerr)
		}
	}(resp.Body)

	slog.Debug("Upstream responded", "path", path, "status", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read upstream response (http %d): %w", resp.StatusCode, err)
	}

	// Unmarshal rejects anything after the JSON document, unlike a streaming decoder.
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: field %q: %v", ErrSchemaMismatch, typeErr.Field, err)
		}
		return fmt.Errorf("decode upstream response (http %d): %w", resp.StatusCode, err)
	}
	return nil
}
