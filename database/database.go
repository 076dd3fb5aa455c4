package database

import (
	"github.com/gigbook/gigbook-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	venueRepo  *VenueRepo
	artistRepo *ArtistRepo
	showRepo   *ShowRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		venueRepo:  NewVenueRepo(db),
		artistRepo: NewArtistRepo(db),
		showRepo:   NewShowRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) VenueRepo() *VenueRepo {
	return d.venueRepo
}

func (d Database) ArtistRepo() *ArtistRepo {
	return d.artistRepo
}

func (d Database) ShowRepo() *ShowRepo {
	return d.showRepo
}

// Migrate brings the schema up to date for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Venue{},
		&models.Artist{},
		&models.Show{},
	)
}
