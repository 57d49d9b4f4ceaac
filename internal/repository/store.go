package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Store groups the repositories that share one connection or transaction.
type Store struct {
	db *gorm.DB

	Users       *UserRepository
	Relations   *RelationRepository
	Restaurants *RestaurantRepository
	Tags        *TagRepository
}

// NewStore creates a Store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Users:       &UserRepository{db: db},
		Relations:   &RelationRepository{db: db},
		Restaurants: &RestaurantRepository{db: db},
		Tags:        &TagRepository{db: db},
	}
}

// Transaction runs fn with a Store bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// ReadTransaction runs fn in a read-only transaction whose queries all see the
// same snapshot.
func (s *Store) ReadTransaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}
