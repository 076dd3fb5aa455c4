package database

import (
	"errors"
	"time"

	"github.com/gigbook/gigbook-backend/errs"
	"github.com/gigbook/gigbook-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db}
}

// ShowListing is one row of the full show listing, joined with both
// the hosting venue and the booked artist.
type ShowListing struct {
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// All returns every show joined both ways, ordered by start time.
func (r *ShowRepo) All() ([]ShowListing, error) {
	listings := []ShowListing{}
	err := r.db.Model(&models.Show{}).
		Select(
			"shows.venue_id",
			"venues.name AS venue_name",
			"shows.artist_id",
			"artists.name AS artist_name",
			"artists.image_link AS artist_image_link",
			"shows.start_time",
		).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.start_time").
		Find(&listings).Error
	return listings, err
}

// Book links the artist to the venue at the given start time. The
// existence checks and the upsert share one transaction: either the
// link exists with the new start time afterwards, or nothing changed.
// Booking a pair that already has a show moves that show's start time
// instead of creating a second row; two racing bookings for the same
// pair serialize on the composite primary key.
func (r *ShowRepo) Book(venueID, artistID uint, startTime time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, venueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("venue")
			}
			return err
		}

		var artist models.Artist
		if err := tx.First(&artist, artistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("artist")
			}
			return err
		}

		show := models.Show{VenueID: venueID, ArtistID: artistID, StartTime: startTime}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "venue_id"}, {Name: "artist_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"start_time": startTime}),
		}).Omit(clause.Associations).Create(&show).Error
	})
}
