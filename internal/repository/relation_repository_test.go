package repository_test

import (
	"context"
	"testing"

	"dishlist/backend/internal/models"
	"dishlist/backend/internal/repository"
	"dishlist/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationRepository_FindEdgeIgnoresDirection(t *testing.T) {
	db := testutil.NewDB(t)
	users := testutil.SeedUsers(t, db, 2)
	store := repository.NewStore(db)
	ctx := context.Background()
	alice, bob := users[0].ID, users[1].ID

	require.NoError(t, store.Relations.Create(ctx, &models.UserRelation{
		RequesterID: bob,
		AddresseeID: alice,
		Status:      models.StatusPending,
	}))

	forward, err := store.Relations.FindEdge(ctx, alice, bob)
	require.NoError(t, err)
	reverse, err := store.Relations.FindEdge(ctx, bob, alice)
	require.NoError(t, err)

	require.NotNil(t, forward)
	require.NotNil(t, reverse)
	assert.Equal(t, forward.ID, reverse.ID)
	assert.Equal(t, bob, forward.RequesterID)
	assert.Equal(t, alice, forward.PairLow)
	assert.Equal(t, bob, forward.PairHigh)
}

func TestRelationRepository_PairIndexRejectsReverseEdge(t *testing.T) {
	db := testutil.NewDB(t)
	users := testutil.SeedUsers(t, db, 2)
	store := repository.NewStore(db)
	ctx := context.Background()

	require.NoError(t, store.Relations.Create(ctx, &models.UserRelation{
		RequesterID: users[0].ID,
		AddresseeID: users[1].ID,
		Status:      models.StatusPending,
	}))

	err := store.Relations.Create(ctx, &models.UserRelation{
		RequesterID: users[1].ID,
		AddresseeID: users[0].ID,
		Status:      models.StatusPending,
	})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.UserRelation{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRelationRepository_RejectsSelfEdge(t *testing.T) {
	db := testutil.NewDB(t)
	users := testutil.SeedUsers(t, db, 1)
	store := repository.NewStore(db)

	err := store.Relations.Create(context.Background(), &models.UserRelation{
		RequesterID: users[0].ID,
		AddresseeID: users[0].ID,
		Status:      models.StatusPending,
	})
	assert.ErrorIs(t, err, models.ErrSelfRelation)
}

func TestRelationRepository_AcceptPendingHonoursDirection(t *testing.T) {
	db := testutil.NewDB(t)
	users := testutil.SeedUsers(t, db, 2)
	store := repository.NewStore(db)
	ctx := context.Background()
	alice, bob := users[0].ID, users[1].ID

	require.NoError(t, store.Relations.Create(ctx, &models.UserRelation{
		RequesterID: alice,
		AddresseeID: bob,
		Status:      models.StatusPending,
	}))

	ok, err := store.Relations.AcceptPending(ctx, bob, alice)
	require.NoError(t, err)
	assert.False(t, ok, "edge is stored alice→bob")

	ok, err = store.Relations.AcceptPending(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, ok)

	edge, err := store.Relations.FindEdge(ctx, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, edge.Status)
}

func TestRelationRepository_ListPendingByDirection(t *testing.T) {
	db := testutil.NewDB(t)
	users := testutil.SeedUsers(t, db, 3)
	store := repository.NewStore(db)
	ctx := context.Background()

	require.NoError(t, store.Relations.Create(ctx, &models.UserRelation{RequesterID: users[0].ID, AddresseeID: users[1].ID, Status: models.StatusPending}))
	require.NoError(t, store.Relations.Create(ctx, &models.UserRelation{RequesterID: users[2].ID, AddresseeID: users[0].ID, Status: models.StatusPending}))

	outgoing, err := store.Relations.ListPending(ctx, users[0].ID, repository.Outgoing)
	require.NoError(t, err)
	incoming, err := store.Relations.ListPending(ctx, users[0].ID, repository.Incoming)
	require.NoError(t, err)

	require.Len(t, outgoing, 1)
	require.Len(t, incoming, 1)
	assert.Equal(t, users[1].ID, outgoing[0].AddresseeID)
	assert.Equal(t, users[2].ID, incoming[0].RequesterID)
}

func TestRelationRepository_DeleteAcceptedEitherDirection(t *testing.T) {
	db := testutil.NewDB(t)
	users := testutil.SeedUsers(t, db, 2)
	store := repository.NewStore(db)
	ctx := context.Background()
	alice, bob := users[0].ID, users[1].ID

	require.NoError(t, store.Relations.Create(ctx, &models.UserRelation{RequesterID: alice, AddresseeID: bob, Status: models.StatusAccepted}))

	ok, err := store.Relations.DeleteAccepted(ctx, bob, alice)
	require.NoError(t, err)
	assert.True(t, ok)

	edge, err := store.Relations.FindEdge(ctx, alice, bob)
	require.NoError(t, err)
	assert.Nil(t, edge)
}
