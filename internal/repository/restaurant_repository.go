package repository

import (
	"context"
	"errors"

	"dishlist/backend/internal/models"

	"gorm.io/gorm"
)

// RestaurantRepository persists restaurants with their evaluation and tags.
type RestaurantRepository struct {
	db *gorm.DB
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("Owner").
		Preload("Evaluation").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") })
}

// Create inserts the restaurant, its evaluation and its tag links.
// Tags must already exist in the registry.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(restaurant).Error
}

// FindByID returns the restaurant with owner, evaluation and tags, or nil.
func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).Scopes(withAssociations).First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// ListAll returns every restaurant in id order. Visibility is decided by the
// caller, not by the query.
func (r *RestaurantRepository) ListAll(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.WithContext(ctx).Scopes(withAssociations).Order("restaurants.id").Find(&restaurants).Error
	return restaurants, err
}

// UpdateFields writes the editable columns, including zero values.
func (r *RestaurantRepository) UpdateFields(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Model(restaurant).
		Select("name", "city", "neighborhood", "status", "highlights", "last_visited_at", "privacy_level", "updated_at").
		Updates(restaurant).Error
}

// ReplaceEvaluation drops the current evaluation and stores eval when non-nil.
func (r *RestaurantRepository) ReplaceEvaluation(ctx context.Context, restaurantID uint, eval *models.Evaluation) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("restaurant_id = ?", restaurantID).Delete(&models.Evaluation{}).Error; err != nil {
		return err
	}
	if eval == nil {
		return nil
	}
	eval.ID = 0
	eval.RestaurantID = restaurantID
	return db.Create(eval).Error
}

// ConnectTags links tags to the restaurant.
func (r *RestaurantRepository) ConnectTags(ctx context.Context, restaurant *models.Restaurant, tags []*models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(restaurant).Association("Tags").Append(tags)
}

// DisconnectTags unlinks tags from the restaurant. The tags themselves stay.
func (r *RestaurantRepository) DisconnectTags(ctx context.Context, restaurant *models.Restaurant, tags []*models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(restaurant).Association("Tags").Delete(tags)
}

// Delete removes the restaurant and its evaluation, and detaches its tags.
func (r *RestaurantRepository) Delete(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Unscoped().Select("Tags", "Evaluation").Delete(restaurant).Error
}
