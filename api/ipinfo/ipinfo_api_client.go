package ipinfo

import (
	"context"
	"net/url"

	"events-server/api"
	"events-server/models"
)

const TOKEN_QUERY_PARAM = "token"

type IPInfoApiClient struct {
	*api.HTTPClient
	token string
}

// NewIPInfoApiClient creates a client. token may be empty; ipinfo.io then
// serves the anonymous quota.
func NewIPInfoApiClient(httpClient *api.HTTPClient, token string) *IPInfoApiClient {
	return &IPInfoApiClient{
		HTTPClient: httpClient,
		token:      token,
	}
}

// Lookup returns the record for ip, or for the caller's own address when ip
// is empty.
func (c *IPInfoApiClient) Lookup(ctx context.Context, ip string) (*models.IPInfo, error) {
	endpoint := "/json"
	if ip != "" {
		endpoint = "/" + url.PathEscape(ip) + "/json"
	}
	query := url.Values{}
	if c.token != "" {
		query.Set(TOKEN_QUERY_PARAM, c.token)
	}
	var response models.IPInfo
	if err := c.Get(ctx, endpoint, query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
