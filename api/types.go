package api

import (
	"time"

	"github.com/gigbook/gigbook-backend/database"
	"github.com/gigbook/gigbook-backend/models"
)

// timeLayout is the fixed show timestamp format. No timezone suffix;
// values are interpreted as UTC at the parse boundary.
const timeLayout = "2006-01-02 15:04:05"

// Notice is a flash-style operation outcome message. The entity id is
// carried when the client needs to get back to a detail view, e.g.
// after a failed delete.
type Notice struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	VenueID  uint   `json:"venue_id,omitempty"`
	ArtistID uint   `json:"artist_id,omitempty"`
}

// Area groups the venues sharing one exact (city, state) pair.
type Area struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []*models.Venue `json:"venues"`
}

// SearchResponse carries name-search hits. Count always equals
// len(Data): there is no limit on matches, both are kept for
// compatibility with existing clients.
type SearchResponse struct {
	Count      int                `json:"count"`
	Data       []database.NameRef `json:"data"`
	SearchTerm string             `json:"search_term"`
}

// VenueShowView is one classified show row on a venue detail view.
type VenueShowView struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowView is one classified show row on an artist detail view.
type ArtistShowView struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueDetail is the venue page payload: the venue's fields plus its
// shows classified relative to the current instant.
type VenueDetail struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	Genres             []string        `json:"genres"`
	ImageLink          string          `json:"image_link"`
	FacebookLink       string          `json:"facebook_link"`
	Website            string          `json:"website"`
	SeekingTalent      bool            `json:"seeking_talent"`
	SeekingDescription string          `json:"seeking_description"`
	PastShows          []VenueShowView `json:"past_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShows      []VenueShowView `json:"upcoming_shows"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

// ArtistDetail is the artist page payload, listing venues instead.
type ArtistDetail struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Genres             []string         `json:"genres"`
	ImageLink          string           `json:"image_link"`
	FacebookLink       string           `json:"facebook_link"`
	Website            string           `json:"website"`
	SeekingVenue       bool             `json:"seeking_venue"`
	SeekingDescription string           `json:"seeking_description"`
	PastShows          []ArtistShowView `json:"past_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShows      []ArtistShowView `json:"upcoming_shows"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// ShowView is one row of the full show listing.
type ShowView struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// partitionVenueShows splits a venue's shows into past and upcoming
// relative to now. A show starting exactly at now counts as past: the
// boundary is inclusive on the past side.
func partitionVenueShows(shows []database.VenueShow, now time.Time) (past, upcoming []VenueShowView) {
	past = []VenueShowView{}
	upcoming = []VenueShowView{}
	for _, s := range shows {
		view := VenueShowView{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(timeLayout),
		}
		if s.StartTime.After(now) {
			upcoming = append(upcoming, view)
		} else {
			past = append(past, view)
		}
	}
	return past, upcoming
}

// partitionArtistShows is the artist-side counterpart of
// partitionVenueShows, with the same inclusive past boundary.
func partitionArtistShows(shows []database.ArtistShow, now time.Time) (past, upcoming []ArtistShowView) {
	past = []ArtistShowView{}
	upcoming = []ArtistShowView{}
	for _, s := range shows {
		view := ArtistShowView{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime.Format(timeLayout),
		}
		if s.StartTime.After(now) {
			upcoming = append(upcoming, view)
		} else {
			past = append(past, view)
		}
	}
	return past, upcoming
}

func newVenueDetail(venue *models.Venue, past, upcoming []VenueShowView) VenueDetail {
	return VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             venue.Genres,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		Website:            venue.WebsiteLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		PastShows:          past,
		PastShowsCount:     len(past),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
	}
}

func newArtistDetail(artist *models.Artist, past, upcoming []ArtistShowView) ArtistDetail {
	return ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             artist.Genres,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		Website:            artist.WebsiteLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		PastShows:          past,
		PastShowsCount:     len(past),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
	}
}

func newShowView(listing database.ShowListing) ShowView {
	return ShowView{
		VenueID:         listing.VenueID,
		VenueName:       listing.VenueName,
		ArtistID:        listing.ArtistID,
		ArtistName:      listing.ArtistName,
		ArtistImageLink: listing.ArtistImageLink,
		StartTime:       listing.StartTime.Format(timeLayout),
	}
}
