package repository

import (
	"testing"

	"devconnect/internal/database"
	"devconnect/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// createTestUser persists a user with sensible defaults.
func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "hashed-password",
		Avatar:   "https://www.gravatar.com/avatar/0?s=300&r=pg&d=mm",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestPost persists a post authored by the given user.
func createTestPost(t *testing.T, db *gorm.DB, user *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:       user.ID,
		Text:         text,
		Image:        "https://example.com/img.png",
		AuthorName:   user.Name,
		AuthorAvatar: user.Avatar,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
