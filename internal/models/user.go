package models

import "gorm.io/gorm"

// User represents an account known to the catalog.
// Credentials live with the authentication collaborator, not here.
type User struct {
	gorm.Model
	Email    string  `gorm:"size:255;uniqueIndex;not null"`
	Username *string `gorm:"size:255;uniqueIndex"` // Nullable while accounts migrate to usernames

	Restaurants []Restaurant `gorm:"foreignKey:OwnerID"`
}

// DisplayName returns the username when set, otherwise the email.
func (u User) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return u.Email
}
