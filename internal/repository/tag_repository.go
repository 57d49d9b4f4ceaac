package repository

import (
	"context"
	"errors"

	"dishlist/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository is the global tag registry. Callers pass normalized names.
type TagRepository struct {
	db *gorm.DB
}

// Ensure returns the tag called name, creating it if absent. Concurrent
// callers converge on the same row: a lost insert race is absorbed by
// ON CONFLICT DO NOTHING followed by a read.
func (r *TagRepository) Ensure(ctx context.Context, name string) (*models.Tag, error) {
	db := r.db.WithContext(ctx)

	tag := models.Tag{Name: name}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	if tag.ID != 0 && err == nil {
		return &tag, nil
	}

	var existing models.Tag
	if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// FindByNames returns the registered tags among names, ordered by name.
func (r *TagRepository) FindByNames(ctx context.Context, names []string) ([]*models.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var tags []*models.Tag
	err := r.db.WithContext(ctx).Where("name IN ?", names).Order("name").Find(&tags).Error
	return tags, err
}

// Registered returns the subset of names present in the registry.
func (r *TagRepository) Registered(ctx context.Context, names []string) (map[string]bool, error) {
	tags, err := r.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	registered := make(map[string]bool, len(tags))
	for _, tag := range tags {
		registered[tag.Name] = true
	}
	return registered, nil
}

// List returns every registered tag ordered by name.
func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Order("name").Find(&tags).Error
	return tags, err
}
