package models

import (
	"time"

	"gorm.io/gorm"
)

// RestaurantStatus tracks whether the owner has been there yet.
type RestaurantStatus string

const (
	StatusWantToGo RestaurantStatus = "WANT_TO_GO"
	StatusTriedIt  RestaurantStatus = "TRIED_IT"
)

// Valid reports whether s is a known status.
func (s RestaurantStatus) Valid() bool {
	return s == StatusWantToGo || s == StatusTriedIt
}

// PrivacyLevel decides who besides the owner may see a restaurant.
type PrivacyLevel string

const (
	PrivacyPublic      PrivacyLevel = "PUBLIC"
	PrivacyFriendsOnly PrivacyLevel = "FRIENDS_ONLY"
	PrivacyPrivate     PrivacyLevel = "PRIVATE"
)

// Valid reports whether p is one of the three tiers.
func (p PrivacyLevel) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyFriendsOnly, PrivacyPrivate:
		return true
	}
	return false
}

// Restaurant is a catalog entry owned by exactly one user.
type Restaurant struct {
	gorm.Model
	OwnerID       uint             `gorm:"not null;index"`
	Name          string           `gorm:"size:255;not null"`
	City          string           `gorm:"size:255;not null;index"`
	Neighborhood  string           `gorm:"size:255;not null"`
	Status        RestaurantStatus `gorm:"type:varchar(20);not null"`
	Highlights    string
	LastVisitedAt *time.Time
	PrivacyLevel  PrivacyLevel `gorm:"type:varchar(20);not null;default:'PUBLIC'"`

	Owner      User        `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
	Evaluation *Evaluation `gorm:"constraint:OnDelete:CASCADE;"`
	Tags       []*Tag      `gorm:"many2many:restaurant_tags;"`
}

// FinalEvaluation returns the mean of the sub-ratings, and false when the
// restaurant has not been rated.
func (r Restaurant) FinalEvaluation() (float64, bool) {
	if r.Evaluation == nil {
		return 0, false
	}
	return r.Evaluation.Final(), true
}

// TagNames returns the names of the attached tags.
func (r Restaurant) TagNames() []string {
	names := make([]string, 0, len(r.Tags))
	for _, tag := range r.Tags {
		if tag != nil {
			names = append(names, tag.Name)
		}
	}
	return names
}

// Evaluation holds the five sub-ratings (0-5) of a restaurant.
// The final evaluation is always derived from them and never stored.
type Evaluation struct {
	ID           uint `gorm:"primaryKey"`
	RestaurantID uint `gorm:"not null;uniqueIndex"`
	Location     int  `gorm:"not null;default:0"`
	Service      int  `gorm:"not null;default:0"`
	PriceQuality int  `gorm:"not null;default:0"`
	FoodQuality  int  `gorm:"not null;default:0"`
	Atmosphere   int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Final is the arithmetic mean of the five sub-ratings.
func (e Evaluation) Final() float64 {
	sum := e.Location + e.Service + e.PriceQuality + e.FoodQuality + e.Atmosphere
	return float64(sum) / 5
}
