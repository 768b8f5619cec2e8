package api

import (
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/ebay"
)

// RouterConfig tunes the inbound rate limiter.
type RouterConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires the search backend routes and middleware.
func NewRouter(provider ebay.Provider, cfg RouterConfig) *mux.Router {
	handler := NewSearchHandler(provider)

	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 20
	}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(rps), burst)))

	r.HandleFunc("/api/search", handler.HandleSearch).Methods("GET")
	r.HandleFunc("/api/health", handler.HandleHealth).Methods("GET")

	return r
}
