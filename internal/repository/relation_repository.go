package repository

import (
	"context"
	"errors"
	"sort"

	"dishlist/backend/internal/models"

	"gorm.io/gorm"
)

// Direction selects which side of a pending edge a user is on.
type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// RelationRepository is the only writer of user_relations.
type RelationRepository struct {
	db *gorm.DB
}

// pair restricts a query to the edge between a and b, whichever direction it was stored in.
func pair(a, b uint) func(*gorm.DB) *gorm.DB {
	low, high := models.OrderedPair(a, b)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("pair_low = ? AND pair_high = ?", low, high)
	}
}

// FindEdge returns the edge between a and b in either direction, or nil.
func (r *RelationRepository) FindEdge(ctx context.Context, a, b uint) (*models.UserRelation, error) {
	var edge models.UserRelation
	err := r.db.WithContext(ctx).Scopes(pair(a, b)).First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// Create inserts a new edge. A second edge for the same pair fails with
// gorm.ErrDuplicatedKey.
func (r *RelationRepository) Create(ctx context.Context, edge *models.UserRelation) error {
	return r.db.WithContext(ctx).Create(edge).Error
}

// AcceptPending moves PENDING(requester→addressee) to ACCEPTED in one
// statement and reports whether such an edge existed.
func (r *RelationRepository) AcceptPending(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.UserRelation{}).
		Where("requester_id = ? AND addressee_id = ? AND status = ?", requesterID, addresseeID, models.StatusPending).
		Update("status", models.StatusAccepted)
	return result.RowsAffected > 0, result.Error
}

// DeletePending removes PENDING(requester→addressee) and reports whether it existed.
func (r *RelationRepository) DeletePending(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("requester_id = ? AND addressee_id = ? AND status = ?", requesterID, addresseeID, models.StatusPending).
		Delete(&models.UserRelation{})
	return result.RowsAffected > 0, result.Error
}

// DeleteAccepted removes the ACCEPTED edge between a and b, whichever
// direction it was stored in, and reports whether it existed.
func (r *RelationRepository) DeleteAccepted(ctx context.Context, a, b uint) (bool, error) {
	result := r.db.WithContext(ctx).Scopes(pair(a, b)).
		Where("status = ?", models.StatusAccepted).
		Delete(&models.UserRelation{})
	return result.RowsAffected > 0, result.Error
}

// ListAccepted returns the ACCEPTED edges involving userID on either side.
func (r *RelationRepository) ListAccepted(ctx context.Context, userID uint) ([]models.UserRelation, error) {
	var edges []models.UserRelation
	err := r.db.WithContext(ctx).
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)", models.StatusAccepted, userID, userID).
		Order("id").
		Find(&edges).Error
	return edges, err
}

// FriendsOf returns the ids of userID's friends in ascending order.
func (r *RelationRepository) FriendsOf(ctx context.Context, userID uint) ([]uint, error) {
	edges, err := r.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.Counterpart(userID))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// ListPending returns the PENDING edges where userID is the addressee
// (Incoming) or the requester (Outgoing).
func (r *RelationRepository) ListPending(ctx context.Context, userID uint, direction Direction) ([]models.UserRelation, error) {
	query := r.db.WithContext(ctx).Where("status = ?", models.StatusPending)
	switch direction {
	case Incoming:
		query = query.Where("addressee_id = ?", userID)
	default:
		query = query.Where("requester_id = ?", userID)
	}

	var edges []models.UserRelation
	err := query.Order("id").Find(&edges).Error
	return edges, err
}
