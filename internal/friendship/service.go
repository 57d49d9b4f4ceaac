// Package friendship implements the friend-request state machine.
//
// Per unordered pair of users the states are NONE (no edge), PENDING
// (requester→addressee) and ACCEPTED. Decline, cancel and remove delete the
// edge, so the pair returns to NONE and may start over.
package friendship

import (
	"context"
	"errors"

	"dishlist/backend/internal/models"
	"dishlist/backend/internal/repository"
	"dishlist/backend/pkg/apperrors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// State describes a pair from one user's point of view.
type State string

const (
	StateNone            State = "none"
	StatePendingOutgoing State = "pending_outgoing"
	StatePendingIncoming State = "pending_incoming"
	StateFriends         State = "friends"
)

// Overview is a user's friends and open requests, as user ids.
type Overview struct {
	Friends  []uint `json:"friends"`
	Incoming []uint `json:"incoming"`
	Outgoing []uint `json:"outgoing"`
}

// Service enforces the legal transitions over the relation store.
type Service struct {
	store *repository.Store
	log   *logrus.Logger
}

// NewService creates a Service.
func NewService(store *repository.Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}

// Request creates PENDING(requester→addressee). The existence check and the
// insert share one transaction, and the pair index turns a lost race with an
// opposite-direction request into ErrAlreadyRelated.
func (s *Service) Request(ctx context.Context, requesterID, addresseeID uint) (*models.UserRelation, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfRequest
	}

	var edge *models.UserRelation
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		exists, err := tx.Users.Exists(ctx, addresseeID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}

		existing, err := tx.Relations.FindEdge(ctx, requesterID, addresseeID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyRelated
		}

		edge = &models.UserRelation{
			RequesterID: requesterID,
			AddresseeID: addresseeID,
			Status:      models.StatusPending,
		}
		return tx.Relations.Create(ctx, edge)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrAlreadyRelated
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create friend request")
	}

	s.log.WithFields(logrus.Fields{"requester_id": requesterID, "addressee_id": addresseeID}).Info("Friend request sent")
	return edge, nil
}

// Accept turns PENDING(requester→current) into ACCEPTED. Only the addressee
// can accept; the requester calling it gets ErrRequestNotFound.
func (s *Service) Accept(ctx context.Context, currentUserID, requesterID uint) error {
	ok, err := s.store.Relations.AcceptPending(ctx, requesterID, currentUserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to accept friend request")
	}
	if !ok {
		return ErrRequestNotFound
	}

	s.log.WithFields(logrus.Fields{"requester_id": requesterID, "addressee_id": currentUserID}).Info("Friend request accepted")
	return nil
}

// Decline deletes PENDING(requester→current).
func (s *Service) Decline(ctx context.Context, currentUserID, requesterID uint) error {
	ok, err := s.store.Relations.DeletePending(ctx, requesterID, currentUserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to decline friend request")
	}
	if !ok {
		return ErrRequestNotFound
	}

	s.log.WithFields(logrus.Fields{"requester_id": requesterID, "addressee_id": currentUserID}).Info("Friend request declined")
	return nil
}

// Cancel deletes PENDING(current→addressee); it is the requester's decline.
func (s *Service) Cancel(ctx context.Context, currentUserID, addresseeID uint) error {
	ok, err := s.store.Relations.DeletePending(ctx, currentUserID, addresseeID)
	if err != nil {
		return apperrors.Wrap(err, "failed to cancel friend request")
	}
	if !ok {
		return ErrRequestNotFound
	}

	s.log.WithFields(logrus.Fields{"requester_id": currentUserID, "addressee_id": addresseeID}).Info("Friend request cancelled")
	return nil
}

// Remove deletes an ACCEPTED edge, whichever side sent the original request.
func (s *Service) Remove(ctx context.Context, currentUserID, otherUserID uint) error {
	ok, err := s.store.Relations.DeleteAccepted(ctx, currentUserID, otherUserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove friend")
	}
	if !ok {
		return ErrNotFriends
	}

	s.log.WithFields(logrus.Fields{"user_id": currentUserID, "other_id": otherUserID}).Info("Friend removed")
	return nil
}

// FriendsOf returns the ids of userID's friends in ascending order.
func (s *Service) FriendsOf(ctx context.Context, userID uint) ([]uint, error) {
	ids, err := s.store.Relations.FriendsOf(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list friends")
	}
	return ids, nil
}

// PendingIncoming returns the open requests addressed to userID.
func (s *Service) PendingIncoming(ctx context.Context, userID uint) ([]models.UserRelation, error) {
	edges, err := s.store.Relations.ListPending(ctx, userID, repository.Incoming)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list incoming requests")
	}
	return edges, nil
}

// PendingOutgoing returns the open requests sent by userID.
func (s *Service) PendingOutgoing(ctx context.Context, userID uint) ([]models.UserRelation, error) {
	edges, err := s.store.Relations.ListPending(ctx, userID, repository.Outgoing)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list outgoing requests")
	}
	return edges, nil
}

// Overview reads friends and both request lists in one transaction.
func (s *Service) Overview(ctx context.Context, userID uint) (*Overview, error) {
	overview := &Overview{Friends: []uint{}, Incoming: []uint{}, Outgoing: []uint{}}
	err := s.store.ReadTransaction(ctx, func(tx *repository.Store) error {
		friends, err := tx.Relations.FriendsOf(ctx, userID)
		if err != nil {
			return err
		}
		overview.Friends = append(overview.Friends, friends...)

		incoming, err := tx.Relations.ListPending(ctx, userID, repository.Incoming)
		if err != nil {
			return err
		}
		for _, edge := range incoming {
			overview.Incoming = append(overview.Incoming, edge.RequesterID)
		}

		outgoing, err := tx.Relations.ListPending(ctx, userID, repository.Outgoing)
		if err != nil {
			return err
		}
		for _, edge := range outgoing {
			overview.Outgoing = append(overview.Outgoing, edge.AddresseeID)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load friends overview")
	}
	return overview, nil
}

// StateBetween reports the pair state as seen by viewerID.
func (s *Service) StateBetween(ctx context.Context, viewerID, otherID uint) (State, error) {
	edge, err := s.store.Relations.FindEdge(ctx, viewerID, otherID)
	if err != nil {
		return StateNone, apperrors.Wrap(err, "failed to load relation")
	}
	return stateOf(edge, viewerID), nil
}

func stateOf(edge *models.UserRelation, viewerID uint) State {
	switch {
	case edge == nil:
		return StateNone
	case edge.Status == models.StatusAccepted:
		return StateFriends
	case edge.RequesterID == viewerID:
		return StatePendingOutgoing
	default:
		return StatePendingIncoming
	}
}
