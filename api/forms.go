package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gigbook/gigbook-backend/errs"
	"github.com/gigbook/gigbook-backend/models"
	"gorm.io/datatypes"
)

// VenueInput is the validated venue form payload. The seeking flag is
// a checkbox: presence of the field in the submitted form means true,
// absence means false. That mapping lives here, at the parse boundary,
// not in domain logic.
type VenueInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistInput is the validated artist form payload.
type ArtistInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ShowInput is the validated show form payload.
type ShowInput struct {
	ArtistID  uint      `json:"artist_id"`
	VenueID   uint      `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

func parseVenueForm(r *http.Request) (VenueInput, error) {
	if err := r.ParseForm(); err != nil {
		return VenueInput{}, errs.NewBadRequestError("malformed form body")
	}

	input := VenueInput{
		Name:               r.PostForm.Get("name"),
		City:               r.PostForm.Get("city"),
		State:              r.PostForm.Get("state"),
		Address:            r.PostForm.Get("address"),
		Phone:              r.PostForm.Get("phone"),
		Genres:             r.PostForm["genres"],
		ImageLink:          r.PostForm.Get("image_link"),
		FacebookLink:       r.PostForm.Get("facebook_link"),
		WebsiteLink:        r.PostForm.Get("website_link"),
		SeekingTalent:      r.PostForm.Has("seeking_talent"),
		SeekingDescription: r.PostForm.Get("seeking_description"),
	}

	for _, field := range []struct{ name, value string }{
		{"name", input.Name},
		{"city", input.City},
		{"state", input.State},
		{"address", input.Address},
	} {
		if field.value == "" {
			return input, errs.NewValidationError(field.name)
		}
	}

	return input, nil
}

func parseArtistForm(r *http.Request) (ArtistInput, error) {
	if err := r.ParseForm(); err != nil {
		return ArtistInput{}, errs.NewBadRequestError("malformed form body")
	}

	input := ArtistInput{
		Name:               r.PostForm.Get("name"),
		City:               r.PostForm.Get("city"),
		State:              r.PostForm.Get("state"),
		Phone:              r.PostForm.Get("phone"),
		Genres:             r.PostForm["genres"],
		ImageLink:          r.PostForm.Get("image_link"),
		FacebookLink:       r.PostForm.Get("facebook_link"),
		WebsiteLink:        r.PostForm.Get("website_link"),
		SeekingVenue:       r.PostForm.Has("seeking_venue"),
		SeekingDescription: r.PostForm.Get("seeking_description"),
	}

	for _, field := range []struct{ name, value string }{
		{"name", input.Name},
		{"city", input.City},
		{"state", input.State},
	} {
		if field.value == "" {
			return input, errs.NewValidationError(field.name)
		}
	}

	return input, nil
}

func parseShowForm(r *http.Request) (ShowInput, error) {
	if err := r.ParseForm(); err != nil {
		return ShowInput{}, errs.NewBadRequestError("malformed form body")
	}

	artistID, err := formID(r, "artist_id")
	if err != nil {
		return ShowInput{}, err
	}
	venueID, err := formID(r, "venue_id")
	if err != nil {
		return ShowInput{}, err
	}

	raw := r.PostForm.Get("start_time")
	startTime, err := time.ParseInLocation(timeLayout, raw, time.UTC)
	if err != nil {
		return ShowInput{}, errs.NewParseError("start_time", raw, err)
	}

	return ShowInput{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, nil
}

func formID(r *http.Request, field string) (uint, error) {
	raw := r.PostForm.Get(field)
	if raw == "" {
		return 0, errs.NewValidationError(field)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError(fmt.Sprintf("invalid %s", field))
	}
	return uint(id), nil
}

func venueFromInput(input VenueInput) models.Venue {
	return models.Venue{
		Name:               input.Name,
		City:               input.City,
		State:              input.State,
		Address:            input.Address,
		Phone:              input.Phone,
		Genres:             datatypes.NewJSONSlice(input.Genres),
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		WebsiteLink:        input.WebsiteLink,
		SeekingTalent:      input.SeekingTalent,
		SeekingDescription: input.SeekingDescription,
	}
}

// applyVenueInput overwrites every mutable field unconditionally:
// edits are a full replace, never a partial patch.
func applyVenueInput(venue *models.Venue, input VenueInput) {
	venue.Name = input.Name
	venue.City = input.City
	venue.State = input.State
	venue.Address = input.Address
	venue.Phone = input.Phone
	venue.Genres = datatypes.NewJSONSlice(input.Genres)
	venue.ImageLink = input.ImageLink
	venue.FacebookLink = input.FacebookLink
	venue.WebsiteLink = input.WebsiteLink
	venue.SeekingTalent = input.SeekingTalent
	venue.SeekingDescription = input.SeekingDescription
}

func artistFromInput(input ArtistInput) models.Artist {
	return models.Artist{
		Name:               input.Name,
		City:               input.City,
		State:              input.State,
		Phone:              input.Phone,
		Genres:             datatypes.NewJSONSlice(input.Genres),
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		WebsiteLink:        input.WebsiteLink,
		SeekingVenue:       input.SeekingVenue,
		SeekingDescription: input.SeekingDescription,
	}
}

// applyArtistInput overwrites every mutable field unconditionally.
func applyArtistInput(artist *models.Artist, input ArtistInput) {
	artist.Name = input.Name
	artist.City = input.City
	artist.State = input.State
	artist.Phone = input.Phone
	artist.Genres = datatypes.NewJSONSlice(input.Genres)
	artist.ImageLink = input.ImageLink
	artist.FacebookLink = input.FacebookLink
	artist.WebsiteLink = input.WebsiteLink
	artist.SeekingVenue = input.SeekingVenue
	artist.SeekingDescription = input.SeekingDescription
}
