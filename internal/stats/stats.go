// Package stats derives market-value summaries from completed-sale listings.
package stats

import (
	"math"
	"math/rand"
	"sort"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
)

// Calculate produces a MarketValue summary for the given listings. The query
// string is echoed back as the model name. An empty listing set yields a
// zero-valued summary rather than an error.
func Calculate(listings []model.Listing, query string) model.MarketValue {
	mv := model.MarketValue{Model: query}
	if len(listings) == 0 {
		return mv
	}

	prices := make([]float64, 0, len(listings))
	for _, l := range listings {
		prices = append(prices, l.Price)
	}
	sort.Float64s(prices)

	// Min and max are rounded with the same rule as the derived values so
	// sub-cent prices cannot push the mean or median outside [min, max].
	mv.TotalListings = len(prices)
	mv.MinPrice = round2(prices[0])
	mv.MaxPrice = round2(prices[len(prices)-1])
	mv.AveragePrice = round2(mean(prices))
	mv.MedianPrice = round2(median(prices))
	mv.RecommendedValue = round2(recommended(prices, mv.MedianPrice))

	// Placeholder trend signal in [-5, +5]. Not derived from historical
	// data; a real trend source can replace this without changing the shape.
	mv.PriceChange = round2(rand.Float64()*10 - 5)

	return mv
}

func mean(sorted []float64) float64 {
	var sum float64
	for _, p := range sorted {
		sum += p
	}
	return sum / float64(len(sorted))
}

// median expects an ascending-sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// recommended blends the outlier-trimmed mean with the median. Quartiles use
// simple index positions (floor(n*0.25), floor(n*0.75)) in the sorted slice,
// not interpolation; prices beyond 1.5*IQR of [q1, q3] are discarded. When
// trimming discards everything the median stands alone.
func recommended(sorted []float64, med float64) float64 {
	n := len(sorted)
	q1 := sorted[n*25/100]
	q3 := sorted[n*75/100]
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	filtered := sorted[:0:0]
	for _, p := range sorted {
		if p >= lower && p <= upper {
			filtered = append(filtered, p)
		}
	}

	if len(filtered) == 0 {
		return med
	}
	return 0.6*mean(filtered) + 0.4*med
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
