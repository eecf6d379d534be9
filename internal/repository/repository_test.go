package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/models"
	"github.com/Eursukkul/meetapp-service/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the production
// schema. A single connection keeps every query on the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@meetapp.dev", name),
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createFile(t *testing.T, db *gorm.DB, path string) *models.File {
	t.Helper()
	f := &models.File{Name: "banner.png", Path: path, URL: "http://localhost:3333/files/" + path}
	require.NoError(t, db.Create(f).Error)
	return f
}

func createMeetapp(t *testing.T, db *gorm.DB, owner *models.User, name string, date time.Time, banner *models.File) *models.Meetapp {
	t.Helper()
	m := &models.Meetapp{
		Name:        name,
		Description: name + " description",
		Location:    "Bangkok",
		Date:        date,
		UserID:      owner.ID,
	}
	if banner != nil {
		m.BannerID = &banner.ID
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func subscribe(t *testing.T, db *gorm.DB, user *models.User, meetapp *models.Meetapp) *models.Subscription {
	t.Helper()
	s := &models.Subscription{UserID: user.ID, MeetappID: meetapp.ID}
	require.NoError(t, db.Create(s).Error)
	return s
}

func ctx() context.Context {
	return context.Background()
}
