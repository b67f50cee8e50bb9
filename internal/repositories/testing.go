//go:build integration
// +build integration

package repositories

import (
	"testing"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/pkg/config"
	"github.com/PhotoScout/API/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB        *gorm.DB
	Users     UserRepository
	Guides    GuideRepository
	Photos    PhotoRepository
	Lenses    LensRepository
	BetaCodes BetaCodeRepository
}

// SetupTestLogger builds a console logger for test runs.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.New(config.LoggerConfig{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)

	return log
}

// SetupTestDB initializes an in-memory database with automatic cleanup.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	err = db.AutoMigrate(
		&db_models.User{},
		&db_models.Guide{},
		&db_models.Photo{},
		&db_models.Lens{},
		&db_models.BetaCode{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	log := SetupTestLogger(t)

	return &TestContext{
		DB:        db,
		Users:     NewUserRepository(db, log),
		Guides:    NewGuideRepository(db, log),
		Photos:    NewPhotoRepository(db, log),
		Lenses:    NewLensRepository(db, log),
		BetaCodes: NewBetaCodeRepository(db, log),
	}
}

// CreateTestUser builds an unsaved user with a hashed placeholder password.
func CreateTestUser(t *testing.T, username string) *db_models.User {
	t.Helper()

	return &db_models.User{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarea",
	}
}

// CreateTestGuide builds an unsaved guide owned by the given user.
func CreateTestGuide(t *testing.T, ownerID uuid.UUID, title string) *db_models.Guide {
	t.Helper()

	return &db_models.Guide{
		Title:      title,
		Visibility: db_models.GuidePrivate,
		OwnerID:    ownerID,
	}
}

// CreateTestPhoto builds an unsaved photo; pass nil coordinates for an
// untagged one.
func CreateTestPhoto(t *testing.T, flickrID string, lat *float64, lon *float64) *db_models.Photo {
	t.Helper()

	return &db_models.Photo{
		Origin:    db_models.OriginFlickr,
		Title:     "Test photo " + flickrID,
		Author:    "tester",
		FlickrID:  flickrID,
		URL:       "https://live.staticflickr.com/" + flickrID + ".jpg",
		Latitude:  lat,
		Longitude: lon,
	}
}

func FloatPtr(v float64) *float64 {
	return &v
}
