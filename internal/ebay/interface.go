package ebay

import (
	"context"
	"log"
	"time"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
)

// Provider defines the interface for completed-listing providers.
type Provider interface {
	// Available returns true if the provider is configured and usable.
	Available() bool

	// Search retrieves one page of completed listings for the given
	// parameters.
	Search(ctx context.Context, params model.SearchParams) (*model.SearchResult, error)
}

// Config holds configuration for the listing provider.
type Config struct {
	// AppID is the eBay Finding API application ID. Empty routes all
	// searches to the mock provider.
	AppID string

	// BaseURL overrides the Finding API endpoint, mainly for tests.
	BaseURL string

	Timeout time.Duration
}

// NewProvider returns the real Finding API client when an App ID is
// configured and the mock provider otherwise.
func NewProvider(cfg Config) Provider {
	if cfg.AppID != "" {
		return NewClient(cfg)
	}

	log.Println("WARN: EBAY_APP_ID not set, serving mock listing data")
	return NewMockProvider()
}

var _ Provider = (*Client)(nil)
var _ Provider = (*MockProvider)(nil)
