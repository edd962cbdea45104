// Package openstates fetches legislators and district lookups from an
// OpenStates-style HTTP API.
package openstates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"askthem/internal/directory/models"
	"askthem/internal/directory/ports"
	"askthem/internal/platform/config"
	id "askthem/pkg/domain"
	"askthem/pkg/platform/sentinel"
)

// maxBody bounds how much of a response is read.
const maxBody = 32 << 20

// Client implements ports.OfficeholderSource and ports.GeoLocator.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the retrying client, e.g. in tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New builds a client that retries transient failures cfg.RetryMax times.
func New(cfg config.OpenStatesConfig, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("openstates base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("openstates base url: %w", err)
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = cfg.RetryMax
		retryClient.Logger = c.logger
		retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
		retryClient.HTTPClient = &http.Client{Timeout: timeout}
		c.httpClient = retryClient.StandardClient()
	}
	return c, nil
}

// FetchOfficeholders returns every legislator record for key, as delivered.
func (c *Client) FetchOfficeholders(ctx context.Context, key id.JurisdictionKey) ([]models.RawAttributes, error) {
	q := url.Values{}
	q.Set("state", string(key))
	var records []models.RawAttributes
	if err := c.get(ctx, "/legislators/", q, &records); err != nil {
		return nil, fmt.Errorf("fetch legislators for %s: %w", key, err)
	}
	if records == nil {
		records = []models.RawAttributes{}
	}
	return records, nil
}

type geoLegislator struct {
	State    string `json:"state"`
	Chamber  string `json:"chamber"`
	District string `json:"district"`
}

// DistrictsAt returns the distinct districts whose legislators represent
// the point, in response order.
func (c *Client) DistrictsAt(ctx context.Context, lat, lng float64) ([]ports.DistrictRef, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("long", strconv.FormatFloat(lng, 'f', -1, 64))
	var legislators []geoLegislator
	if err := c.get(ctx, "/legislators/geo/", q, &legislators); err != nil {
		return nil, fmt.Errorf("geo lookup: %w", err)
	}
	seen := make(map[ports.DistrictRef]struct{}, len(legislators))
	refs := make([]ports.DistrictRef, 0, len(legislators))
	for _, l := range legislators {
		ref := ports.DistrictRef{
			Jurisdiction: strings.ToLower(l.State),
			Chamber:      l.Chamber,
			District:     l.District,
		}
		if ref.Jurisdiction == "" || ref.District == "" {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return err
	}
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBody))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", sentinel.ErrNotFound, resp.Status)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", sentinel.ErrUnavailable, resp.Status)
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
}
