// api/http_client.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"events-server/apperrors"
	"events-server/config"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClientWith(baseURL, &http.Client{})
}

// NewHTTPClientWith wraps an existing client, e.g. one that injects auth
// headers. The upstream timeout is always enforced.
func NewHTTPClientWith(baseURL string, client *http.Client) *HTTPClient {
	client.Timeout = config.UPSTREAM_REQUEST_TIMEOUT_SECONDS * time.Second
	return &HTTPClient{
		BaseURL:    baseURL,
		HTTPClient: client,
	}
}

// Get issues a GET to BaseURL+endpoint and decodes the JSON body into response.
// Any status but 200 yields *apperrors.UpstreamUnavailableError; an undecodable
// body yields apperrors.ErrUpstreamMalformed. Transport failures are reported
// as apperrors.ErrUpstreamUnreachable without the query string, which may
// carry credentials.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, query url.Values, response interface{}) error {
	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return redactTransportError(c.BaseURL+endpoint, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return &apperrors.UpstreamUnavailableError{StatusCode: res.StatusCode, Status: res.Status}
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrUpstreamMalformed, err)
		}
	}

	return nil
}

func redactTransportError(target string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	return fmt.Errorf("%w: GET %s: %w", apperrors.ErrUpstreamUnreachable, target, err)
}
