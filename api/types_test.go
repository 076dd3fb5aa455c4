package api

import (
	"testing"
	"time"

	"github.com/gigbook/gigbook-backend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionShowStartingExactlyNowIsPast(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	shows := []database.VenueShow{
		{ArtistID: 1, ArtistName: "Jane Doe", StartTime: now},
	}

	past, upcoming := partitionVenueShows(shows, now)
	require.Len(t, past, 1)
	assert.Empty(t, upcoming)
	assert.Equal(t, "Jane Doe", past[0].ArtistName)
}

func TestPartitionShowOneSecondAfterNowIsUpcoming(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	shows := []database.VenueShow{
		{ArtistID: 1, ArtistName: "Jane Doe", StartTime: now.Add(time.Second)},
	}

	past, upcoming := partitionVenueShows(shows, now)
	assert.Empty(t, past)
	require.Len(t, upcoming, 1)
}

func TestPartitionPreservesSourceOrder(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	shows := []database.VenueShow{
		{ArtistID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ArtistID: 2, StartTime: now.Add(-time.Hour)},
		{ArtistID: 3, StartTime: now.Add(time.Hour)},
		{ArtistID: 4, StartTime: now.Add(48 * time.Hour)},
	}

	past, upcoming := partitionVenueShows(shows, now)
	require.Len(t, past, 2)
	require.Len(t, upcoming, 2)
	assert.EqualValues(t, 1, past[0].ArtistID)
	assert.EqualValues(t, 2, past[1].ArtistID)
	assert.EqualValues(t, 3, upcoming[0].ArtistID)
	assert.EqualValues(t, 4, upcoming[1].ArtistID)
}

func TestPartitionArtistShowsBoundary(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	shows := []database.ArtistShow{
		{VenueID: 1, VenueName: "The Fillmore", StartTime: now},
		{VenueID: 2, VenueName: "Bowery Ballroom", StartTime: now.Add(time.Minute)},
	}

	past, upcoming := partitionArtistShows(shows, now)
	require.Len(t, past, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "The Fillmore", past[0].VenueName)
	assert.Equal(t, "Bowery Ballroom", upcoming[0].VenueName)
}

func TestPartitionFormatsStartTime(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	shows := []database.VenueShow{
		{ArtistID: 1, StartTime: time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)},
	}

	_, upcoming := partitionVenueShows(shows, now)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2030-01-01 20:00:00", upcoming[0].StartTime)
}
