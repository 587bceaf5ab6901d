// Package lookup implements the marketplace search client.
package lookup

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"scout/config"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	searchPath       = "/search"
	apiKeyHeader     = "X-Api-Key"
	maxResponseBytes = 1 << 20
)

// searchResponse is the JSON body returned by the search endpoint.
type searchResponse struct {
	Total int          `json:"total"`
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	URL      string `json:"url"`
}

// StatusError is returned when the search endpoint answers with a non-2xx status.
type StatusError struct {
	Key        entity.ItemKey
	StatusCode int
}

func (e *StatusError) Error() string {
	return "lookup " + e.Key.String() + ": unexpected status " + strconv.Itoa(e.StatusCode)
}

// Client queries the search endpoint once per item key, in parallel.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	itemTimeout time.Duration
	concurrency int
	logger      *slog.Logger
}

// NewClient creates a marketplace search client from configuration.
func NewClient(cfg config.LookupConfig, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("lookup base URL is required")
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid lookup base URL")
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		itemTimeout: cfg.ItemTimeout,
		concurrency: cfg.Concurrency,
		logger:      logger,
	}, nil
}

var _ service.LookupProvider = (*Client)(nil)

// Lookup fans out one query per key and waits for all of them. The first
// failure cancels the remaining queries and fails the whole batch.
func (c *Client) Lookup(ctx context.Context, keys []entity.ItemKey, preference entity.SearchPreference) ([]entity.LookupResult, error) {
	results := make([]entity.LookupResult, len(keys))

	group, groupCtx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		group.SetLimit(c.concurrency)
	}

	for i, key := range keys {
		group.Go(func() error {
			result, err := c.lookupOne(groupCtx, key, preference)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		c.logger.Warn("Lookup batch failed",
			slog.Int("item_count", len(keys)),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewLookupUnavailableError(err)
	}

	return results, nil
}

func (c *Client) lookupOne(ctx context.Context, key entity.ItemKey, preference entity.SearchPreference) (entity.LookupResult, error) {
	if c.itemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.itemTimeout)
		defer cancel()
	}

	query := url.Values{}
	query.Set("q", key.String())
	query.Set("status", strings.ToLower(preference.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+query.Encode(), nil)
	if err != nil {
		return entity.LookupResult{}, errors.Wrapf(err, "build request for %s", key)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.LookupResult{}, errors.Wrapf(err, "lookup %s", key)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entity.LookupResult{}, &StatusError{Key: key, StatusCode: resp.StatusCode}
	}

	var body searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return entity.LookupResult{}, errors.Wrapf(err, "decode response for %s", key)
	}

	return toLookupResult(key, &body), nil
}

func toLookupResult(key entity.ItemKey, body *searchResponse) entity.LookupResult {
	if body.Total <= 0 || len(body.Items) == 0 {
		return entity.NotFoundResult(key)
	}

	best := body.Items[0]

	return entity.LookupResult{
		Key:          key,
		Found:        true,
		Title:        best.Title,
		Price:        listingPrice(best.Price),
		Currency:     best.Currency,
		URL:          best.URL,
		ListingCount: body.Total,
	}
}

// listingPrice reads the listing's asking price. Listings without a usable
// price still count as matches and report zero.
func listingPrice(raw string) entity.Amount {
	if strings.TrimSpace(raw) == "" {
		return entity.Amount{}
	}

	price, err := entity.ParseAmount(raw)
	if err != nil {
		return entity.Amount{}
	}

	return price
}
