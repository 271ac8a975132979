// Package api provides the HTTP client for the recipes endpoint.
//
// The wire contract is GET <base>?search=<enc>&ingredient=<enc>, both
// parameters omitted when empty, responding with a JSON array of recipe
// objects. Every failure mode collapses into [domain.FetchError]; the
// underlying cause goes to the log only.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/khmoussa/dishboard/internal/domain"
	"github.com/khmoussa/dishboard/internal/logger"
)

// EnvAPIBase names the environment variable overriding the base endpoint.
const EnvAPIBase = "DISHBOARD_API"

// DefaultBase is the endpoint used when no override is configured. The
// path mirrors the backend's canonical mount point, /api/recipes.
const DefaultBase = "http://127.0.0.1:8080/api/recipes"

// Compile-time interface check.
var _ domain.RecipeSource = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// Client fetches recipes from a REST endpoint.
type Client struct {
	base string
	http *http.Client
	log  *logger.Logger
}

// New creates a recipes client for the given base endpoint URL.
func New(base string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		base: base,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// RequestURL builds the request URL for a filter. Only non-empty fields
// become query parameters, percent-encoded, search before ingredient.
func (c *Client) RequestURL(f domain.Filter) string {
	if f.Empty() {
		return c.base
	}
	var params []string
	if f.Search != "" {
		params = append(params, "search="+url.QueryEscape(f.Search))
	}
	if f.Ingredient != "" {
		params = append(params, "ingredient="+url.QueryEscape(f.Ingredient))
	}
	return c.base + "?" + strings.Join(params, "&")
}

// Fetch performs one GET against the recipes endpoint and returns the
// decoded result. Any transport or status failure returns a
// *domain.FetchError; a well-formed but non-array body decodes to an
// empty result rather than an error.
func (c *Client) Fetch(ctx context.Context, f domain.Filter) ([]domain.Recipe, error) {
	reqURL := c.RequestURL(f)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewFetchError(fmt.Errorf("api: create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("api: GET %s", reqURL)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("api: request failed: %v", err)
		return nil, domain.NewFetchError(fmt.Errorf("api: request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("api: read response: %v", err)
		return nil, domain.NewFetchError(fmt.Errorf("api: read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("api: %s returned %s", reqURL, resp.Status)
		return nil, domain.NewFetchError(fmt.Errorf("api: %s", resp.Status))
	}

	recipes := decodeRecipes(body, c.log)
	c.log.Debug("api: %d recipe(s) for filter %+v", len(recipes), f)
	return recipes, nil
}

// decodeRecipes decodes the response body element by element so one
// malformed record doesn't sink the whole result. A non-array body
// coerces to an empty result.
func decodeRecipes(body []byte, log *logger.Logger) []domain.Recipe {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Warn("api: response is not a JSON array, treating as empty: %v", err)
		return []domain.Recipe{}
	}

	recipes := make([]domain.Recipe, 0, len(raw))
	for i, el := range raw {
		var r domain.Recipe
		if err := json.Unmarshal(el, &r); err != nil {
			log.Warn("api: skipping malformed record %d: %v", i, err)
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes
}
