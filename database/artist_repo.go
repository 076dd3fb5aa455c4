package database

import (
	"errors"
	"time"

	"github.com/gigbook/gigbook-backend/errs"
	"github.com/gigbook/gigbook-backend/models"
	"gorm.io/gorm"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db}
}

// ArtistShow is one show row on an artist detail view, joined with the
// hosting venue.
type ArtistShow struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// FindAll returns all artists ordered by ascending id
func (r *ArtistRepo) FindAll() ([]*models.Artist, error) {
	artists := []*models.Artist{}
	err := r.db.Order("id").Find(&artists).Error
	return artists, err
}

// SearchByName matches term as a case-insensitive substring of the
// artist name only. The empty term matches every artist.
func (r *ArtistRepo) SearchByName(term string) ([]NameRef, error) {
	refs := []NameRef{}
	err := r.db.Model(&models.Artist{}).
		Select("id", "name").
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id").
		Find(&refs).Error
	return refs, err
}

// FindByID returns an artist by its ID
func (r *ArtistRepo) FindByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("artist")
		}
		return nil, err
	}
	return &artist, nil
}

// Shows returns the artist's show rows joined with the hosting venue,
// ordered by start time ascending.
func (r *ArtistRepo) Shows(artistID uint) ([]ArtistShow, error) {
	shows := []ArtistShow{}
	err := r.db.Model(&models.Show{}).
		Select("shows.venue_id", "venues.name AS venue_name", "venues.image_link AS venue_image_link", "shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time").
		Find(&shows).Error
	return shows, err
}

// Add inserts a new artist inside its own transaction
func (r *ArtistRepo) Add(artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
}

// Update overwrites every mutable field of an existing artist inside
// its own transaction (full replace, not partial patch)
func (r *ArtistRepo) Update(artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(artist).Error
	})
}

// Delete removes an artist by id; the cascade constraint takes its
// show rows with it.
func (r *ArtistRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Artist{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFound("artist")
		}
		return nil
	})
}
