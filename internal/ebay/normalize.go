package ebay

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
)

// Finding API responses wrap every value in a single-element array.
type findingResponse struct {
	FindCompletedItemsResponse []struct {
		SearchResult []struct {
			Count string          `json:"@count"`
			Item  json.RawMessage `json:"item"`
		} `json:"searchResult"`
		PaginationOutput []struct {
			PageNumber   []string `json:"pageNumber"`
			TotalPages   []string `json:"totalPages"`
			TotalEntries []string `json:"totalEntries"`
		} `json:"paginationOutput"`
	} `json:"findCompletedItemsResponse"`
}

type findingItem struct {
	ItemID      []string `json:"itemId"`
	Title       []string `json:"title"`
	GalleryURL  []string `json:"galleryURL"`
	ViewItemURL []string `json:"viewItemURL"`
	Condition   []struct {
		ConditionDisplayName []string `json:"conditionDisplayName"`
	} `json:"condition"`
	SellingStatus []struct {
		CurrentPrice []struct {
			Value      string `json:"__value__"`
			CurrencyID string `json:"@currencyId"`
		} `json:"currentPrice"`
	} `json:"sellingStatus"`
	ShippingInfo []struct {
		ShippingServiceCost []struct {
			Value string `json:"__value__"`
		} `json:"shippingServiceCost"`
	} `json:"shippingInfo"`
	ListingInfo []struct {
		EndTime []string `json:"endTime"`
	} `json:"listingInfo"`
}

// parseSearchResponse flattens a Finding API payload into listings plus
// pagination. Malformed payloads degrade to an empty result: the condition
// is logged, never surfaced to the caller.
func parseSearchResponse(body []byte) *model.SearchResult {
	result := &model.SearchResult{
		Listings:   []model.Listing{},
		Pagination: model.Pagination{CurrentPage: 1},
	}

	var envelope findingResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("WARN: malformed eBay response, returning empty result: %v", err)
		return result
	}
	if len(envelope.FindCompletedItemsResponse) == 0 {
		log.Println("WARN: eBay response missing findCompletedItemsResponse")
		return result
	}
	outer := envelope.FindCompletedItemsResponse[0]

	if len(outer.PaginationOutput) > 0 {
		p := outer.PaginationOutput[0]
		result.Pagination.CurrentPage = firstInt(p.PageNumber, 1)
		result.Pagination.TotalPages = firstInt(p.TotalPages, 0)
		result.Pagination.TotalListings = firstInt(p.TotalEntries, 0)
	}

	if len(outer.SearchResult) == 0 {
		return result
	}
	sr := outer.SearchResult[0]

	// Zero results is a normal response; the item array is absent and must
	// not be touched.
	if sr.Count == "0" || len(sr.Item) == 0 {
		return result
	}

	var items []findingItem
	if err := json.Unmarshal(sr.Item, &items); err != nil {
		log.Printf("WARN: malformed eBay item array, returning empty result: %v", err)
		return result
	}

	for _, item := range items {
		result.Listings = append(result.Listings, normalizeItem(item))
	}

	return result
}

func normalizeItem(item findingItem) model.Listing {
	listing := model.Listing{Condition: "Unknown"}

	listing.ID = first(item.ItemID)
	listing.Title = first(item.Title)
	listing.URL = first(item.ViewItemURL)
	listing.ImageURL = first(item.GalleryURL)

	if len(item.Condition) > 0 {
		if name := first(item.Condition[0].ConditionDisplayName); name != "" {
			listing.Condition = name
		}
	}

	if len(item.SellingStatus) > 0 && len(item.SellingStatus[0].CurrentPrice) > 0 {
		if price, err := strconv.ParseFloat(item.SellingStatus[0].CurrentPrice[0].Value, 64); err == nil {
			listing.Price = price
		}
	}

	if len(item.ShippingInfo) > 0 && len(item.ShippingInfo[0].ShippingServiceCost) > 0 {
		if cost, err := strconv.ParseFloat(item.ShippingInfo[0].ShippingServiceCost[0].Value, 64); err == nil {
			listing.ShippingCost = &cost
		}
	}

	if len(item.ListingInfo) > 0 {
		listing.SoldDate = first(item.ListingInfo[0].EndTime)
	}

	return listing
}

func first(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

func firstInt(values []string, fallback int) int {
	if len(values) > 0 {
		if n, err := strconv.Atoi(values[0]); err == nil {
			return n
		}
	}
	return fallback
}
