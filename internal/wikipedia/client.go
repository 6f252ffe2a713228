// Package wikipedia implements the search and category collaborators on
// top of the MediaWiki action API.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sethvargo/go-retry"
	log "github.com/sirupsen/logrus"

	"wikilabels/internal/models"
)

// Options configures a Client. Zero values fall back to sane defaults.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	SearchLimit   int
	MaxRetries    int
	RetryBaseWait time.Duration
	CacheTTL      time.Duration
	UserAgent     string
}

// Client talks to a MediaWiki action API endpoint. Responses are cached
// in process for the configured TTL, so repeated combinations touching
// the same query or title do not hit the network twice.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	searchLimit int
	maxRetries  uint64
	baseWait    time.Duration
	userAgent   string
	cache       *gocache.Cache
}

func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("%w: wikipedia base URL is required", models.ErrConfiguration)
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid wikipedia base URL: %v", models.ErrConfiguration, err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 10
	}
	if opts.RetryBaseWait <= 0 {
		opts.RetryBaseWait = 200 * time.Millisecond
	}

	var cache *gocache.Cache
	if opts.CacheTTL > 0 {
		cache = gocache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	log.Debugf("wikipedia client initialized (endpoint %s, search limit %d)", opts.BaseURL, opts.SearchLimit)
	return &Client{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		baseURL:     opts.BaseURL,
		searchLimit: opts.SearchLimit,
		maxRetries:  uint64(opts.MaxRetries),
		baseWait:    opts.RetryBaseWait,
		userAgent:   opts.UserAgent,
		cache:       cache,
	}, nil
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type categoriesResponse struct {
	Query struct {
		Pages []struct {
			Title      string `json:"title"`
			Missing    bool   `json:"missing"`
			Categories []struct {
				Title string `json:"title"`
			} `json:"categories"`
		} `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Search returns page titles matching the query, most relevant first.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	cacheKey := "search\x00" + query
	if c.cache != nil {
		if hit, ok := c.cache.Get(cacheKey); ok {
			return hit.([]string), nil
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", fmt.Sprintf("%d", c.searchLimit))
	params.Set("srprop", "")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	var decoded searchResponse
	if err := c.get(ctx, params, &decoded); err != nil {
		return nil, err
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("%w: wikipedia search: %s (%s)", models.ErrCollaborator, decoded.Error.Info, decoded.Error.Code)
	}

	titles := make([]string, 0, len(decoded.Query.Search))
	for _, hit := range decoded.Query.Search {
		titles = append(titles, hit.Title)
	}

	if c.cache != nil {
		c.cache.SetDefault(cacheKey, titles)
	}
	return titles, nil
}

// Categories returns the non-hidden category names of a page, with the
// "Category:" prefix stripped. A title with no page behind it is a valid
// lookup that yields an empty set.
func (c *Client) Categories(ctx context.Context, title string) ([]string, error) {
	cacheKey := "categories\x00" + title
	if c.cache != nil {
		if hit, ok := c.cache.Get(cacheKey); ok {
			return hit.([]string), nil
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "categories")
	params.Set("titles", title)
	params.Set("clshow", "!hidden")
	params.Set("cllimit", "max")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	var decoded categoriesResponse
	if err := c.get(ctx, params, &decoded); err != nil {
		return nil, err
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("%w: wikipedia categories: %s (%s)", models.ErrCollaborator, decoded.Error.Info, decoded.Error.Code)
	}

	var categories []string
	for _, page := range decoded.Query.Pages {
		if page.Missing {
			log.Debugf("no page for title %q, returning empty category set", title)
			continue
		}
		for _, cat := range page.Categories {
			categories = append(categories, strings.TrimPrefix(cat.Title, "Category:"))
		}
	}

	if c.cache != nil {
		c.cache.SetDefault(cacheKey, categories)
	}
	return categories, nil
}

// get performs one API GET with retry on transport errors, 5xx and 429.
// Anything that survives the retry budget is surfaced as a collaborator
// error.
func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.baseWait))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			return err
		}
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Warnf("wikipedia request failed, may retry: %v", err)
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			log.Warnf("wikipedia returned HTTP %d, may retry", resp.StatusCode)
			return retry.RetryableError(fmt.Errorf("HTTP %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("HTTP %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return json.Unmarshal(body, out)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrCollaborator, err)
	}
	return nil
}
