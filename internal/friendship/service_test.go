package friendship_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dishlist/backend/internal/friendship"
	"dishlist/backend/internal/logging"
	"dishlist/backend/internal/models"
	"dishlist/backend/internal/repository"
	"dishlist/backend/internal/testutil"
	"dishlist/backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T, users int) (*friendship.Service, *gorm.DB, []uint) {
	t.Helper()
	db := testutil.NewDB(t)
	seeded := testutil.SeedUsers(t, db, users)
	ids := make([]uint, len(seeded))
	for i, u := range seeded {
		ids[i] = u.ID
	}
	return friendship.NewService(repository.NewStore(db), logging.Discard()), db, ids
}

func TestRequest_SelfRequest(t *testing.T) {
	svc, _, ids := setup(t, 1)

	_, err := svc.Request(context.Background(), ids[0], ids[0])
	assert.ErrorIs(t, err, friendship.ErrSelfRequest)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestRequest_UnknownAddressee(t *testing.T) {
	svc, _, ids := setup(t, 1)

	_, err := svc.Request(context.Background(), ids[0], ids[0]+100)
	assert.ErrorIs(t, err, friendship.ErrUserNotFound)
}

func TestRequest_DuplicateAndReverseFail(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	edge, err := svc.Request(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, edge.Status)

	_, err = svc.Request(ctx, a, b)
	assert.ErrorIs(t, err, friendship.ErrAlreadyRelated)

	_, err = svc.Request(ctx, b, a)
	assert.ErrorIs(t, err, friendship.ErrAlreadyRelated)
}

func TestRequest_AlreadyFriends(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, b, a))

	_, err = svc.Request(ctx, b, a)
	assert.ErrorIs(t, err, friendship.ErrAlreadyRelated)
}

func TestAccept_IsSymmetric(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, b, a))

	friendsOfA, err := svc.FriendsOf(ctx, a)
	require.NoError(t, err)
	friendsOfB, err := svc.FriendsOf(ctx, b)
	require.NoError(t, err)

	assert.Equal(t, []uint{b}, friendsOfA)
	assert.Equal(t, []uint{a}, friendsOfB)
}

func TestAccept_OnlyAddresseeMayAccept(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)

	err = svc.Accept(ctx, a, b)
	assert.ErrorIs(t, err, friendship.ErrRequestNotFound)

	friends, err := svc.FriendsOf(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestAccept_WithoutRequest(t *testing.T) {
	svc, _, ids := setup(t, 2)

	err := svc.Accept(context.Background(), ids[1], ids[0])
	assert.ErrorIs(t, err, friendship.ErrRequestNotFound)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDecline_DeletesEdge(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Decline(ctx, a, b), friendship.ErrRequestNotFound, "requester cannot decline")
	require.NoError(t, svc.Decline(ctx, b, a))

	state, err := svc.StateBetween(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, friendship.StateNone, state)

	_, err = svc.Request(ctx, a, b)
	assert.NoError(t, err, "a declined pair starts fresh")
}

func TestCancel_OnlyRequesterMayCancel(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Cancel(ctx, b, a), friendship.ErrRequestNotFound)
	require.NoError(t, svc.Cancel(ctx, a, b))

	outgoing, err := svc.PendingOutgoing(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, outgoing)
}

func TestCancel_AcceptedEdgeIsNotARequest(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, b, a))

	assert.ErrorIs(t, svc.Cancel(ctx, a, b), friendship.ErrRequestNotFound)
}

func TestRemove_ReturnsPairToNone(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, b, a))

	// Removal works from the side that did not send the request.
	require.NoError(t, svc.Remove(ctx, b, a))

	friends, err := svc.FriendsOf(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, friends)

	_, err = svc.Request(ctx, a, b)
	assert.NoError(t, err)
}

func TestRemove_NotFriends(t *testing.T) {
	svc, _, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	assert.ErrorIs(t, svc.Remove(ctx, a, b), friendship.ErrNotFriends)

	_, err := svc.Request(ctx, a, b)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Remove(ctx, a, b), friendship.ErrNotFriends, "pending is not friends")
}

func TestPendingLists(t *testing.T) {
	svc, _, ids := setup(t, 3)
	ctx := context.Background()

	_, err := svc.Request(ctx, ids[0], ids[1])
	require.NoError(t, err)
	_, err = svc.Request(ctx, ids[2], ids[0])
	require.NoError(t, err)

	incoming, err := svc.PendingIncoming(ctx, ids[0])
	require.NoError(t, err)
	outgoing, err := svc.PendingOutgoing(ctx, ids[0])
	require.NoError(t, err)

	require.Len(t, incoming, 1)
	require.Len(t, outgoing, 1)
	assert.Equal(t, ids[2], incoming[0].RequesterID)
	assert.Equal(t, ids[1], outgoing[0].AddresseeID)
}

func TestOverviewAndStates(t *testing.T) {
	svc, _, ids := setup(t, 4)
	ctx := context.Background()
	me := ids[0]

	_, err := svc.Request(ctx, me, ids[1])
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, ids[1], me))
	_, err = svc.Request(ctx, ids[2], me)
	require.NoError(t, err)
	_, err = svc.Request(ctx, me, ids[3])
	require.NoError(t, err)

	overview, err := svc.Overview(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, []uint{ids[1]}, overview.Friends)
	assert.Equal(t, []uint{ids[2]}, overview.Incoming)
	assert.Equal(t, []uint{ids[3]}, overview.Outgoing)

	cases := map[uint]friendship.State{
		ids[1]: friendship.StateFriends,
		ids[2]: friendship.StatePendingIncoming,
		ids[3]: friendship.StatePendingOutgoing,
	}
	for other, want := range cases {
		got, err := svc.StateBetween(ctx, me, other)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRequest_ConcurrentOppositeDirections(t *testing.T) {
	svc, db, ids := setup(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	const rounds = 10
	var wg sync.WaitGroup
	errs := make([]error, 2*rounds)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, errs[2*i] = svc.Request(ctx, a, b)
		}(i)
		go func(i int) {
			defer wg.Done()
			_, errs[2*i+1] = svc.Request(ctx, b, a)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, friendship.ErrAlreadyRelated)
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&models.UserRelation{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// A reverse request that commits between the existence check and the insert
// is caught by the pair index and reported as ErrAlreadyRelated.
func TestRequest_ReverseEdgeInsertedBeforeCreate(t *testing.T) {
	svc, db, ids := setup(t, 2)
	a, b := ids[0], ids[1]

	injected := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:reverse_edge", func(tx *gorm.DB) {
		if injected || tx.Statement.Schema == nil || tx.Statement.Schema.Table != "user_relations" {
			return
		}
		injected = true
		low, high := models.OrderedPair(a, b)
		now := time.Now()
		tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO user_relations (requester_id, addressee_id, pair_low, pair_high, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			b, a, low, high, models.StatusPending, now, now,
		)
	}))

	_, err := svc.Request(context.Background(), a, b)
	require.True(t, injected)
	assert.ErrorIs(t, err, friendship.ErrAlreadyRelated)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// The injected row shares the single test connection, so it rolls back
	// together with the failed request.
	var count int64
	require.NoError(t, db.Model(&models.UserRelation{}).Where("requester_id = ?", a).Count(&count).Error)
	assert.Zero(t, count)
}
