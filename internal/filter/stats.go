package filter

import (
	"math"
	"time"

	"dishlist/backend/internal/models"
)

// Stats summarizes a listing for the dashboard.
type Stats struct {
	Total          int     `json:"totalRestaurants"`
	AverageRating  float64 `json:"averageRating"`
	RatedCount     int     `json:"ratedCount"`
	UniqueCities   int     `json:"uniqueCities"`
	ThisMonthCount int     `json:"thisMonthCount"`
}

// Summarize computes Stats. The average covers rated restaurants only and is
// rounded to one decimal; "this month" is the calendar month of now.
func Summarize(restaurants []models.Restaurant, now time.Time) Stats {
	stats := Stats{Total: len(restaurants)}

	cities := make(map[string]struct{})
	var sum float64
	for _, r := range restaurants {
		if rating, ok := r.FinalEvaluation(); ok {
			sum += rating
			stats.RatedCount++
		}
		cities[r.City] = struct{}{}

		updated := r.UpdatedAt.In(now.Location())
		if updated.Year() == now.Year() && updated.Month() == now.Month() {
			stats.ThisMonthCount++
		}
	}

	stats.UniqueCities = len(cities)
	if stats.RatedCount > 0 {
		stats.AverageRating = math.Round(sum/float64(stats.RatedCount)*10) / 10
	}
	return stats
}
