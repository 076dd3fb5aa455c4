package database

import (
	"fmt"
	"testing"

	"github.com/gigbook/gigbook-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with foreign keys
// enforced, migrated to the current schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedVenue(t *testing.T, db *gorm.DB, name, city, state string) *models.Venue {
	t.Helper()

	venue := &models.Venue{
		Name:    name,
		City:    city,
		State:   state,
		Address: "123 Main St",
		Genres:  datatypes.NewJSONSlice([]string{"Rock"}),
	}
	require.NoError(t, db.Create(venue).Error)
	return venue
}

func seedArtist(t *testing.T, db *gorm.DB, name, city, state string) *models.Artist {
	t.Helper()

	artist := &models.Artist{
		Name:   name,
		City:   city,
		State:  state,
		Genres: datatypes.NewJSONSlice([]string{"Jazz"}),
	}
	require.NoError(t, db.Create(artist).Error)
	return artist
}

func countShows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Show{}).Count(&count).Error)
	return count
}
