package database

import (
	"testing"
	"time"

	"github.com/gigbook/gigbook-backend/errs"
	"github.com/gigbook/gigbook-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestVenueLocationsGroupByExactPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepo(db)

	seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	seedVenue(t, db, "Great American Music Hall", "San Francisco", "CA")
	seedVenue(t, db, "Bowery Ballroom", "New York", "NY")
	// Different case is a different group, no normalization
	seedVenue(t, db, "Dive Bar", "san francisco", "CA")

	locations, err := repo.Locations()
	require.NoError(t, err)
	require.Len(t, locations, 3)

	// Every venue lands in exactly one group and each group holds all
	// venues sharing its exact pair
	seen := 0
	for _, location := range locations {
		venues, err := repo.FindByLocation(location.City, location.State)
		require.NoError(t, err)
		for _, venue := range venues {
			assert.Equal(t, location.City, venue.City)
			assert.Equal(t, location.State, venue.State)
		}
		seen += len(venues)
	}
	assert.Equal(t, 4, seen)

	sf, err := repo.FindByLocation("San Francisco", "CA")
	require.NoError(t, err)
	require.Len(t, sf, 2)
	assert.Less(t, sf[0].ID, sf[1].ID)
}

func TestVenueSearchByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepo(db)

	fillmore := seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	seedVenue(t, db, "Bowery Ballroom", "New York", "NY")

	refs, err := repo.SearchByName("fILLmORe")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, fillmore.ID, refs[0].ID)
	assert.Equal(t, "The Fillmore", refs[0].Name)
}

func TestVenueSearchByNameEmptyTermMatchesAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepo(db)

	seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	seedVenue(t, db, "Bowery Ballroom", "New York", "NY")

	refs, err := repo.SearchByName("")
	require.NoError(t, err)
	assert.Len(t, refs, 2)
}

func TestVenueSearchMatchesNameOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepo(db)

	seedVenue(t, db, "The Fillmore", "San Francisco", "CA")

	refs, err := repo.SearchByName("Francisco")
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestVenueFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepo(db)

	_, err := repo.FindByID(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestVenueUpdateIsFullReplace(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepo(db)

	venue := seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	venue.SeekingTalent = true
	venue.SeekingDescription = "Looking for rock bands"
	require.NoError(t, repo.Update(venue))

	venue.Name = "The Fillmore West"
	venue.Phone = "415-555-0100"
	venue.Genres = datatypes.NewJSONSlice([]string{"Soul", "Funk"})
	venue.SeekingTalent = false
	venue.SeekingDescription = ""
	require.NoError(t, repo.Update(venue))

	got, err := repo.FindByID(venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Fillmore West", got.Name)
	assert.Equal(t, "415-555-0100", got.Phone)
	assert.Equal(t, []string{"Soul", "Funk"}, []string(got.Genres))
	assert.False(t, got.SeekingTalent)
	assert.Empty(t, got.SeekingDescription)
}

func TestVenueDeleteCascadesShows(t *testing.T) {
	db := newTestDB(t)
	venues := NewVenueRepo(db)
	shows := NewShowRepo(db)

	venue := seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	artist := seedArtist(t, db, "Jane Doe", "San Francisco", "CA")
	require.NoError(t, shows.Book(venue.ID, artist.ID, time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)))
	require.EqualValues(t, 1, countShows(t, db))

	require.NoError(t, venues.Delete(venue.ID))

	// No orphaned show rows referencing the deleted venue
	assert.EqualValues(t, 0, countShows(t, db))

	var remaining int64
	require.NoError(t, db.Model(&models.Venue{}).Count(&remaining).Error)
	assert.EqualValues(t, 0, remaining)
}

func TestVenueDeleteMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepo(db)

	err := repo.Delete(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestVenueShowsOrderedByStartTime(t *testing.T) {
	db := newTestDB(t)
	venues := NewVenueRepo(db)
	shows := NewShowRepo(db)

	venue := seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	first := seedArtist(t, db, "Jane Doe", "San Francisco", "CA")
	second := seedArtist(t, db, "John Smith", "Oakland", "CA")

	require.NoError(t, shows.Book(venue.ID, second.ID, time.Date(2031, 6, 1, 21, 0, 0, 0, time.UTC)))
	require.NoError(t, shows.Book(venue.ID, first.ID, time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)))

	rows, err := venues.Shows(venue.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Doe", rows[0].ArtistName)
	assert.Equal(t, "John Smith", rows[1].ArtistName)
	assert.True(t, rows[0].StartTime.Before(rows[1].StartTime))
}
