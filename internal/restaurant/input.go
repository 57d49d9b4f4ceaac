package restaurant

import (
	"strings"
	"time"

	"dishlist/backend/internal/models"
	"dishlist/backend/pkg/apperrors"
)

// Ratings are the five sub-ratings of an evaluation, each 0 to 5.
type Ratings struct {
	Location     int `json:"location"`
	Service      int `json:"service"`
	PriceQuality int `json:"priceQuality"`
	FoodQuality  int `json:"foodQuality"`
	Atmosphere   int `json:"atmosphere"`
}

func (r Ratings) values() []int {
	return []int{r.Location, r.Service, r.PriceQuality, r.FoodQuality, r.Atmosphere}
}

func (r Ratings) toModel() *models.Evaluation {
	return &models.Evaluation{
		Location:     r.Location,
		Service:      r.Service,
		PriceQuality: r.PriceQuality,
		FoodQuality:  r.FoodQuality,
		Atmosphere:   r.Atmosphere,
	}
}

// Input is the editable part of a restaurant.
type Input struct {
	Name          string                  `json:"name"`
	City          string                  `json:"city"`
	Neighborhood  string                  `json:"neighborhood"`
	Status        models.RestaurantStatus `json:"status"`
	Highlights    string                  `json:"highlights"`
	LastVisitedAt *time.Time              `json:"lastVisitedAt"`
	PrivacyLevel  models.PrivacyLevel     `json:"privacyLevel"`
	// Evaluation nil means the restaurant is not rated.
	Evaluation *Ratings `json:"evaluation"`
	// Tags nil leaves the current tags alone on update; an empty list
	// detaches all of them.
	Tags []string `json:"tags"`
}

// normalize trims the text fields and fills the defaults: neighborhood
// falls back to the city and privacy to PUBLIC.
func (in *Input) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.Neighborhood = strings.TrimSpace(in.Neighborhood)
	in.Highlights = strings.TrimSpace(in.Highlights)

	if in.Name == "" {
		return apperrors.NewValidationError("name is required")
	}
	if in.City == "" {
		return apperrors.NewValidationError("city is required")
	}
	if in.Neighborhood == "" {
		in.Neighborhood = in.City
	}
	if in.Status == "" {
		in.Status = models.StatusWantToGo
	}
	if !in.Status.Valid() {
		return apperrors.NewValidationError("status must be WANT_TO_GO or TRIED_IT")
	}
	if in.PrivacyLevel == "" {
		in.PrivacyLevel = models.PrivacyPublic
	}
	if !in.PrivacyLevel.Valid() {
		return apperrors.NewValidationError("privacyLevel must be PUBLIC, FRIENDS_ONLY or PRIVATE")
	}
	if in.Evaluation != nil {
		for _, v := range in.Evaluation.values() {
			if v < 0 || v > 5 {
				return apperrors.NewValidationError("ratings must be between 0 and 5")
			}
		}
	}
	return nil
}

func (in *Input) apply(r *models.Restaurant) {
	r.Name = in.Name
	r.City = in.City
	r.Neighborhood = in.Neighborhood
	r.Status = in.Status
	r.Highlights = in.Highlights
	r.LastVisitedAt = in.LastVisitedAt
	r.PrivacyLevel = in.PrivacyLevel
}
