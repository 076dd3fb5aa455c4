package models

import "time"

// Show books one artist at one venue at a start time. The
// (venue_id, artist_id) pair is the primary key, so a venue/artist
// pair holds at most one show at a time; booking the same pair again
// moves the existing show instead of adding a row.
type Show struct {
	VenueID   uint      `json:"venue_id" db:"venue_id" gorm:"primaryKey;autoIncrement:false"`
	ArtistID  uint      `json:"artist_id" db:"artist_id" gorm:"primaryKey;autoIncrement:false"`
	StartTime time.Time `json:"start_time" db:"start_time" gorm:"not null"`

	Venue  Venue  `json:"venue,omitempty" gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:CASCADE"`
	Artist Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;references:ID;constraint:OnDelete:CASCADE"`
}
