package models

import "gorm.io/datatypes"

// Artist represents a performer that can be booked at venues
type Artist struct {
	ID                 uint                        `json:"id" db:"id" gorm:"primaryKey"`
	Name               string                      `json:"name" db:"name" gorm:"type:text;not null"`
	City               string                      `json:"city" db:"city" gorm:"type:varchar(120);not null"`
	State              string                      `json:"state" db:"state" gorm:"type:varchar(120);not null"`
	Phone              string                      `json:"phone,omitempty" db:"phone" gorm:"type:varchar(120)"`
	Genres             datatypes.JSONSlice[string] `json:"genres" db:"genres" gorm:"not null"`
	ImageLink          string                      `json:"image_link,omitempty" db:"image_link" gorm:"type:varchar(500)"`
	FacebookLink       string                      `json:"facebook_link,omitempty" db:"facebook_link" gorm:"type:varchar(120)"`
	WebsiteLink        string                      `json:"website_link,omitempty" db:"website_link" gorm:"type:varchar(120)"`
	SeekingVenue       bool                        `json:"seeking_venue" db:"seeking_venue" gorm:"not null;default:false"`
	SeekingDescription string                      `json:"seeking_description,omitempty" db:"seeking_description" gorm:"type:varchar(200)"`

	Shows []Show `json:"shows,omitempty" gorm:"foreignKey:ArtistID;references:ID;constraint:OnDelete:CASCADE"`
}
