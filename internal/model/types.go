package model

// SearchParams holds the validated inbound search request.
// Zero-value pointers mean "not provided" for the optional price bounds.
type SearchParams struct {
	Query     string   `json:"query" validate:"required"`
	Condition string   `json:"condition" validate:"omitempty,oneof=all new used unopened mint"`
	MinPrice  *float64 `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `json:"maxPrice" validate:"omitempty,gte=0"`
	Sort      string   `json:"sort" validate:"omitempty,oneof=best_match price_asc price_desc newest ending_soonest"`
	Page      int      `json:"page" validate:"omitempty,gte=1"`
}

// Listing is one completed sale, flattened from the provider payload.
// Built once per request and never persisted.
type Listing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Condition    string   `json:"condition"`
	Price        float64  `json:"price"`
	ShippingCost *float64 `json:"shippingCost,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	URL          string   `json:"url"`
	SoldDate     string   `json:"soldDate"`
}

// MarketValue summarizes observed sale prices for a query.
// All numeric fields are finite; an empty listing set yields all zeros.
type MarketValue struct {
	Model            string  `json:"model"`
	AveragePrice     float64 `json:"averagePrice"`
	MedianPrice      float64 `json:"medianPrice"`
	MinPrice         float64 `json:"minPrice"`
	MaxPrice         float64 `json:"maxPrice"`
	RecommendedValue float64 `json:"recommendedValue"`
	TotalListings    int     `json:"totalListings"`
	PriceChange      float64 `json:"priceChange"`
}

// Pagination mirrors the provider's pagination output.
type Pagination struct {
	CurrentPage   int `json:"currentPage"`
	TotalPages    int `json:"totalPages"`
	TotalListings int `json:"totalListings"`
}

// SearchResult is what a listing provider returns before statistics are
// derived.
type SearchResult struct {
	Listings   []Listing  `json:"listings"`
	Pagination Pagination `json:"pagination"`
}

// ListingsResponse is the success payload of the search endpoint.
type ListingsResponse struct {
	Listings    []Listing   `json:"listings"`
	Pagination  Pagination  `json:"pagination"`
	MarketValue MarketValue `json:"marketValue"`
}
