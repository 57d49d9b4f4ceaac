// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"fmt"
	"testing"

	"dishlist/backend/internal/database"
	"dishlist/backend/internal/logging"
	"dishlist/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// The pool is limited to one connection so concurrent callers serialize the
// way row locks would serialize them in Postgres.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db, logging.Discard()))
	return db
}

// SeedUsers inserts n users named user1..userN and returns them in order.
func SeedUsers(t testing.TB, db *gorm.DB, n int) []models.User {
	t.Helper()

	users := make([]models.User, n)
	for i := range users {
		username := fmt.Sprintf("user%d", i+1)
		users[i] = models.User{
			Email:    username + "@example.com",
			Username: &username,
		}
		require.NoError(t, db.Create(&users[i]).Error)
	}
	return users
}
