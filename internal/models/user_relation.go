package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// FriendshipStatus defines the state of a relationship between two users.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet answered.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the friend request was accepted, and the users are now friends.
	StatusAccepted FriendshipStatus = "accepted"
)

// ErrSelfRelation is returned when an edge would point a user at themselves.
var ErrSelfRelation = errors.New("a user cannot relate to themselves")

// UserRelation is a directed request between two users.
// PairLow/PairHigh hold the same two ids in ascending order; the unique index
// over them allows at most one edge per unordered pair, whatever the direction.
type UserRelation struct {
	ID          uint             `gorm:"primaryKey"`
	RequesterID uint             `gorm:"not null;index"`
	AddresseeID uint             `gorm:"not null;index"`
	PairLow     uint             `gorm:"not null;uniqueIndex:idx_user_relations_pair"`
	PairHigh    uint             `gorm:"not null;uniqueIndex:idx_user_relations_pair"`
	Status      FriendshipStatus `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Requester User `gorm:"foreignKey:RequesterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Addressee User `gorm:"foreignKey:AddresseeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// OrderedPair returns a and b in ascending order.
func OrderedPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// BeforeCreate fills the normalized pair columns.
func (r *UserRelation) BeforeCreate(_ *gorm.DB) error {
	if r.RequesterID == r.AddresseeID {
		return ErrSelfRelation
	}
	r.PairLow, r.PairHigh = OrderedPair(r.RequesterID, r.AddresseeID)
	return nil
}

// Counterpart returns the id on the other side of the edge from userID.
func (r UserRelation) Counterpart(userID uint) uint {
	if r.RequesterID == userID {
		return r.AddresseeID
	}
	return r.RequesterID
}
