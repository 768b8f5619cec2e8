// Package api exposes the search backend over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/ebay"
	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
	"github.com/Jalesh-poop/HotWheels-Backend/internal/stats"
)

type errorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// SearchHandler serves listing searches and market-value summaries.
type SearchHandler struct {
	provider ebay.Provider
	validate *validator.Validate
}

func NewSearchHandler(provider ebay.Provider) *SearchHandler {
	return &SearchHandler{
		provider: provider,
		validate: validator.New(),
	}
}

// HandleSearch validates the query parameters, fetches one page of completed
// listings and derives the market-value summary.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	params, details := h.parseParams(r)
	if len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "invalid search parameters",
			Details: details,
		})
		return
	}

	result, err := h.provider.Search(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: search %q failed: %v", params.Query, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, model.ListingsResponse{
		Listings:    result.Listings,
		Pagination:  result.Pagination,
		MarketValue: stats.Calculate(result.Listings, params.Query),
	})
}

// HandleHealth is the liveness endpoint.
func (h *SearchHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// parseParams maps the query string onto SearchParams and returns
// human-readable validation messages for anything malformed.
func (h *SearchHandler) parseParams(r *http.Request) (model.SearchParams, []string) {
	q := r.URL.Query()
	var details []string

	params := model.SearchParams{
		Query:     q.Get("query"),
		Condition: q.Get("condition"),
		Sort:      q.Get("sort"),
		Page:      1,
	}

	if raw := q.Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.MinPrice = &v
		} else {
			details = append(details, "minPrice must be a number")
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.MaxPrice = &v
		} else {
			details = append(details, "maxPrice must be a number")
		}
	}
	if raw := q.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			params.Page = v
		} else {
			details = append(details, "page must be a positive integer")
		}
	}

	if err := h.validate.Struct(params); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				details = append(details, describeFieldError(fe))
			}
		} else {
			details = append(details, err.Error())
		}
	}

	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		details = append(details, "minPrice must not exceed maxPrice")
	}

	return params, details
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Query":
		return "query is required"
	case "Condition":
		return "condition must be one of: all, new, used, unopened, mint"
	case "Sort":
		return "sort must be one of: best_match, price_asc, price_desc, newest, ending_soonest"
	case "Page":
		return "page must be a positive integer"
	case "MinPrice":
		return "minPrice must not be negative"
	case "MaxPrice":
		return "maxPrice must not be negative"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: encode response: %v", err)
	}
}
