package repository

import (
	"context"
	"errors"
	"strings"

	"dishlist/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository reads user records. Creating accounts belongs to the
// authentication collaborator; Create exists for seeding and tests.
type UserRepository struct {
	db *gorm.DB
}

// Create inserts a user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID returns the user, or nil when it does not exist.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with id exists.
func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// SearchQuery builds a query matching users whose email or username contains
// term, case-insensitively, excluding excludeID. The caller paginates it; the
// returned query is a new session so it can run both the count and the page.
func (r *UserRepository) SearchQuery(ctx context.Context, term string, excludeID uint) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("id <> ?", excludeID)
	if term = strings.TrimSpace(term); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(username) LIKE ?", pattern, pattern)
	}
	return query.Order("id").Session(&gorm.Session{})
}
