// Package ebay talks to the eBay Finding API for completed Hot Wheels sales
// and provides a mock substitute for unconfigured deployments.
package ebay

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
)

const (
	defaultEndpoint = "https://svcs.ebay.com/services/search/FindingService/v1"

	// Diecast & Toy Vehicles
	categoryID = "222"

	pageSize = 12
)

// Finding API condition IDs for the conditions we expose.
var conditionCodes = map[string]string{
	"new":      "1000",
	"unopened": "1500",
	"mint":     "2750",
	"used":     "3000",
}

var sortTokens = map[string]string{
	"price_asc":      "PricePlusShippingLowest",
	"price_desc":     "PricePlusShippingHighest",
	"newest":         "StartTimeNewest",
	"ending_soonest": "EndTimeSoonest",
}

// Client queries the eBay Finding API.
type Client struct {
	appID      string
	endpoint   string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		appID:      cfg.AppID,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Available() bool {
	return c.appID != ""
}

// Search performs a single findCompletedItems call and normalizes the
// response. One outbound request per invocation; no retries.
func (c *Client) Search(ctx context.Context, params model.SearchParams) (*model.SearchResult, error) {
	if !c.Available() {
		return nil, fmt.Errorf("eBay app ID not configured")
	}

	fullURL := c.buildSearchURL(params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eBay API request failed: %w", err)
	}
	defer resp.Body.Close()

	reader, err := responseReader(resp)
	if err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eBay API returned status %d", resp.StatusCode)
	}

	return parseSearchResponse(body), nil
}

// buildSearchURL maps SearchParams onto the Finding API query dialect. The
// category restriction and the sold-items filter are always present;
// itemFilter indices number sequentially as clauses are added.
func (c *Client) buildSearchURL(params model.SearchParams) string {
	q := url.Values{}
	q.Set("OPERATION-NAME", "findCompletedItems")
	q.Set("SERVICE-VERSION", "1.0.0")
	q.Set("SECURITY-APPNAME", c.appID)
	q.Set("RESPONSE-DATA-FORMAT", "JSON")
	q.Set("REST-PAYLOAD", "")
	q.Set("keywords", params.Query)
	q.Set("categoryId", categoryID)

	filter := 0
	q.Set(itemFilter(filter, "name"), "SoldItemsOnly")
	q.Set(itemFilter(filter, "value"), "true")
	filter++

	// "all" or anything unrecognized adds no condition clause.
	if code, ok := conditionCodes[params.Condition]; ok {
		q.Set(itemFilter(filter, "name"), "Condition")
		q.Set(itemFilter(filter, "value"), code)
		filter++
	}

	if params.MinPrice != nil {
		q.Set(itemFilter(filter, "name"), "MinPrice")
		q.Set(itemFilter(filter, "value"), formatPrice(*params.MinPrice))
		q.Set(itemFilter(filter, "paramName"), "Currency")
		q.Set(itemFilter(filter, "paramValue"), "USD")
		filter++
	}

	if params.MaxPrice != nil {
		q.Set(itemFilter(filter, "name"), "MaxPrice")
		q.Set(itemFilter(filter, "value"), formatPrice(*params.MaxPrice))
		q.Set(itemFilter(filter, "paramName"), "Currency")
		q.Set(itemFilter(filter, "paramValue"), "USD")
		filter++
	}

	sortOrder, ok := sortTokens[params.Sort]
	if !ok {
		sortOrder = "BestMatch"
	}
	q.Set("sortOrder", sortOrder)

	page := params.Page
	if page < 1 {
		page = 1
	}
	q.Set("paginationInput.entriesPerPage", strconv.Itoa(pageSize))
	q.Set("paginationInput.pageNumber", strconv.Itoa(page))

	return c.endpoint + "?" + q.Encode()
}

func itemFilter(index int, field string) string {
	return fmt.Sprintf("itemFilter(%d).%s", index, field)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// responseReader unwraps a compressed response body when the provider
// honored our Accept-Encoding header.
func responseReader(resp *http.Response) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		return gzip.NewReader(resp.Body)
	case "br":
		return brotli.NewReader(resp.Body), nil
	default:
		return resp.Body, nil
	}
}
