package database

import (
	"errors"
	"time"

	"github.com/gigbook/gigbook-backend/errs"
	"github.com/gigbook/gigbook-backend/models"
	"gorm.io/gorm"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db}
}

// Location is a distinct (city, state) pair that venues group under.
// Grouping is exact string match, no case or whitespace normalization.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// NameRef is the (id, name) projection returned by name search.
type NameRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// VenueShow is one show row on a venue detail view, joined with the
// booked artist.
type VenueShow struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Locations returns every distinct (city, state) pair, ordered by city
// then state.
func (r *VenueRepo) Locations() ([]Location, error) {
	locations := []Location{}
	err := r.db.Model(&models.Venue{}).
		Distinct("city", "state").
		Order("city, state").
		Find(&locations).Error
	return locations, err
}

// FindByLocation returns all venues sharing the exact (city, state)
// pair, ordered by id.
func (r *VenueRepo) FindByLocation(city, state string) ([]*models.Venue, error) {
	venues := []*models.Venue{}
	err := r.db.Where("city = ? AND state = ?", city, state).Order("id").Find(&venues).Error
	return venues, err
}

// SearchByName matches term as a case-insensitive substring of the
// venue name only. The empty term matches every venue.
func (r *VenueRepo) SearchByName(term string) ([]NameRef, error) {
	refs := []NameRef{}
	err := r.db.Model(&models.Venue{}).
		Select("id", "name").
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id").
		Find(&refs).Error
	return refs, err
}

// FindByID returns a venue by its ID
func (r *VenueRepo) FindByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("venue")
		}
		return nil, err
	}
	return &venue, nil
}

// Shows returns the venue's show rows joined with the booked artist,
// ordered by start time ascending.
func (r *VenueRepo) Shows(venueID uint) ([]VenueShow, error) {
	shows := []VenueShow{}
	err := r.db.Model(&models.Show{}).
		Select("shows.artist_id", "artists.name AS artist_name", "artists.image_link AS artist_image_link", "shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time").
		Find(&shows).Error
	return shows, err
}

// Add inserts a new venue inside its own transaction
func (r *VenueRepo) Add(venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
}

// Update overwrites every mutable field of an existing venue inside
// its own transaction (full replace, not partial patch)
func (r *VenueRepo) Update(venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(venue).Error
	})
}

// Delete removes a venue by id; the cascade constraint takes its show
// rows with it.
func (r *VenueRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Venue{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFound("venue")
		}
		return nil
	})
}
