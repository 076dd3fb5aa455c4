package database

import (
	"testing"
	"time"

	"github.com/gigbook/gigbook-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistFindAllOrderedByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewArtistRepo(db)

	seedArtist(t, db, "Zelda Quartet", "Austin", "TX")
	seedArtist(t, db, "Aardvark Trio", "Denver", "CO")

	artists, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Zelda Quartet", artists[0].Name)
	assert.Equal(t, "Aardvark Trio", artists[1].Name)
	assert.Less(t, artists[0].ID, artists[1].ID)
}

func TestArtistSearchByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewArtistRepo(db)

	jane := seedArtist(t, db, "Jane Doe", "San Francisco", "CA")
	seedArtist(t, db, "John Smith", "Oakland", "CA")

	refs, err := repo.SearchByName("jANE")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, jane.ID, refs[0].ID)
	assert.Equal(t, "Jane Doe", refs[0].Name)
}

func TestArtistFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewArtistRepo(db)

	_, err := repo.FindByID(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestArtistShowsListVenues(t *testing.T) {
	db := newTestDB(t)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	venue := seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	artist := seedArtist(t, db, "Jane Doe", "San Francisco", "CA")
	require.NoError(t, shows.Book(venue.ID, artist.ID, time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)))

	rows, err := artists.Shows(artist.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, venue.ID, rows[0].VenueID)
	assert.Equal(t, "The Fillmore", rows[0].VenueName)
}

func TestArtistDeleteCascadesShows(t *testing.T) {
	db := newTestDB(t)
	artists := NewArtistRepo(db)
	shows := NewShowRepo(db)

	venue := seedVenue(t, db, "The Fillmore", "San Francisco", "CA")
	artist := seedArtist(t, db, "Jane Doe", "San Francisco", "CA")
	require.NoError(t, shows.Book(venue.ID, artist.ID, time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)))

	require.NoError(t, artists.Delete(artist.ID))
	assert.EqualValues(t, 0, countShows(t, db))
}
