package geoip

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"coupon-service/internal/pkg/config"
	"coupon-service/internal/pkg/errs"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Client resolves a source address to a country code via an ip-api style
// endpoint. Successful lookups are cached (bounded size, time-based expiry);
// failures are never cached and never replaced with a default country.
type Client struct {
	httpClient *http.Client
	baseURL    string
	fields     string
	cache      *expirable.LRU[string, string]
}

func NewClient(cfg config.GeoIPConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		fields:     cfg.Fields,
		cache:      expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

type lookupResponse struct {
	CountryCode string `json:"countryCode"`
}

func (c *Client) GetCountry(ctx context.Context, address string) (string, error) {
	if country, ok := c.cache.Get(address); ok {
		return country, nil
	}

	endpoint := c.baseURL + url.PathEscape(address) + "?fields=" + url.QueryEscape(c.fields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build geo lookup request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "geo lookup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.New("geo lookup returned status " + resp.Status)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Wrap(err, "failed to decode geo lookup response")
	}
	if body.CountryCode == "" {
		return "", errs.New("geo lookup response missing country code")
	}

	c.cache.Add(address, body.CountryCode)
	return body.CountryCode, nil
}
