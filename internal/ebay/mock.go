package ebay

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
)

const (
	mockTotalListings = 47
	mockPageSize      = pageSize
)

var mockVariants = []string{
	"Red", "Blue", "Green", "Black", "White", "Orange",
	"Mint Condition", "Loose", "Carded", "Treasure Hunt",
}

var mockConditions = []string{"New", "Used", "Unopened", "Mint"}

// MockProvider generates synthetic completed listings with the same shape as
// real search results. Output is deterministic for a given query and page so
// demo deployments and tests behave reproducibly.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Available always returns true; the mock needs no credential.
func (m *MockProvider) Available() bool {
	return true
}

// Search produces the requested page of a fixed 47-listing corpus. Pages
// beyond the corpus yield an empty slice, not an error.
func (m *MockProvider) Search(_ context.Context, params model.SearchParams) (*model.SearchResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * mockPageSize
	count := mockTotalListings - start
	if count < 0 {
		count = 0
	}
	if count > mockPageSize {
		count = mockPageSize
	}

	rng := rand.New(rand.NewSource(mockSeed(params.Query) + int64(start)))

	listings := make([]model.Listing, 0, count)
	for i := 0; i < count; i++ {
		listings = append(listings, m.generateListing(rng, params.Query, start+i))
	}

	return &model.SearchResult{
		Listings: listings,
		Pagination: model.Pagination{
			CurrentPage:   page,
			TotalPages:    (mockTotalListings + mockPageSize - 1) / mockPageSize,
			TotalListings: mockTotalListings,
		},
	}, nil
}

func (m *MockProvider) generateListing(rng *rand.Rand, query string, ordinal int) model.Listing {
	variant := mockVariants[rng.Intn(len(mockVariants))]
	year := 1990 + rng.Intn(33) // 1990-2022

	listing := model.Listing{
		ID:        fmt.Sprintf("mock-%d", ordinal+1),
		Title:     fmt.Sprintf("Hot Wheels %s %s (%d)", variant, query, year),
		Condition: mockConditions[rng.Intn(len(mockConditions))],
		Price:     roundCents(5 + rng.Float64()*30),
		URL:       fmt.Sprintf("https://www.ebay.com/itm/mock-%d", ordinal+1),
		SoldDate:  time.Now().AddDate(0, 0, -rng.Intn(30)).Format(time.RFC3339),
	}

	// Roughly 70% of sales list a shipping cost; no synthetic listing ever
	// carries an image URL.
	if rng.Float64() < 0.7 {
		cost := roundCents(2 + rng.Float64()*6)
		listing.ShippingCost = &cost
	}

	return listing
}

func mockSeed(query string) int64 {
	h := fnv.New64a()
	h.Write([]byte(query))
	return int64(h.Sum64())
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
