package testutil

import (
	"fmt"
	"math/rand"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
)

// ListingFactory generates test listings with a seeded random generator so
// test data stays reproducible.
type ListingFactory struct {
	rand *rand.Rand
}

// NewListingFactory creates a factory seeded for reproducible runs.
func NewListingFactory(seed int64) *ListingFactory {
	if seed == 0 {
		seed = 1
	}
	return &ListingFactory{rand: rand.New(rand.NewSource(seed))}
}

// Listing generates one test listing with the given price.
func (f *ListingFactory) Listing(price float64) model.Listing {
	n := f.rand.Intn(10000)
	return model.Listing{
		ID:        fmt.Sprintf("test-%d", n),
		Title:     fmt.Sprintf("Hot Wheels Test Car #%d", n),
		Condition: "Used",
		Price:     price,
		URL:       fmt.Sprintf("https://www.ebay.com/itm/test-%d", n),
		SoldDate:  "2024-01-15T12:00:00.000Z",
	}
}

// Listings generates one test listing per price.
func (f *ListingFactory) Listings(prices ...float64) []model.Listing {
	listings := make([]model.Listing, 0, len(prices))
	for _, p := range prices {
		listings = append(listings, f.Listing(p))
	}
	return listings
}
