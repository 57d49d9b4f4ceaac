// Package visibility decides which restaurants a viewer may see.
package visibility

import (
	"context"

	"dishlist/backend/internal/models"
)

// Anonymous is the viewer id of an unauthenticated request.
const Anonymous uint = 0

// CanView is the visibility rule. The owner always sees their own restaurant;
// everyone else is subject to the privacy tier.
func CanView(viewerID, ownerID uint, tier models.PrivacyLevel, ownerIsFriend bool) bool {
	if viewerID != Anonymous && viewerID == ownerID {
		return true
	}
	switch tier {
	case models.PrivacyPublic:
		return true
	case models.PrivacyFriendsOnly:
		return ownerIsFriend
	default:
		return false
	}
}

// FriendLister returns the ids of a user's accepted friends.
type FriendLister interface {
	FriendsOf(ctx context.Context, userID uint) ([]uint, error)
}

// Resolver answers visibility questions for one viewer against a snapshot of
// their friend set taken when it was built.
type Resolver struct {
	viewerID uint
	friends  map[uint]struct{}
}

// NewResolver creates a Resolver from an already loaded friend list.
func NewResolver(viewerID uint, friendIDs []uint) *Resolver {
	friends := make(map[uint]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		friends[id] = struct{}{}
	}
	return &Resolver{viewerID: viewerID, friends: friends}
}

// Snapshot loads the viewer's friends and builds a Resolver. Friendship is
// symmetric, so the owner is a friend of the viewer exactly when the viewer
// is a friend of the owner.
func Snapshot(ctx context.Context, lister FriendLister, viewerID uint) (*Resolver, error) {
	if viewerID == Anonymous {
		return NewResolver(Anonymous, nil), nil
	}
	ids, err := lister.FriendsOf(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return NewResolver(viewerID, ids), nil
}

// ViewerID returns the viewer the snapshot belongs to.
func (r *Resolver) ViewerID() uint {
	return r.viewerID
}

// IsOwner reports whether the viewer owns restaurants of ownerID.
func (r *Resolver) IsOwner(ownerID uint) bool {
	return r.viewerID != Anonymous && r.viewerID == ownerID
}

// IsFriend reports whether ownerID is one of the viewer's friends.
func (r *Resolver) IsFriend(ownerID uint) bool {
	_, ok := r.friends[ownerID]
	return ok
}

// CanView applies the visibility rule to restaurant.
func (r *Resolver) CanView(restaurant *models.Restaurant) bool {
	return CanView(r.viewerID, restaurant.OwnerID, restaurant.PrivacyLevel, r.IsFriend(restaurant.OwnerID))
}
