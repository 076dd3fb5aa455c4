package models

import "gorm.io/datatypes"

// Venue represents a bookable location that can host shows
type Venue struct {
	ID                 uint                        `json:"id" db:"id" gorm:"primaryKey"`
	Name               string                      `json:"name" db:"name" gorm:"type:text;not null"`
	City               string                      `json:"city" db:"city" gorm:"type:varchar(120);not null"`
	State              string                      `json:"state" db:"state" gorm:"type:varchar(120);not null"`
	Address            string                      `json:"address" db:"address" gorm:"type:varchar(120);not null"`
	Phone              string                      `json:"phone,omitempty" db:"phone" gorm:"type:varchar(120)"`
	Genres             datatypes.JSONSlice[string] `json:"genres" db:"genres" gorm:"not null"`
	ImageLink          string                      `json:"image_link,omitempty" db:"image_link" gorm:"type:varchar(500)"`
	FacebookLink       string                      `json:"facebook_link,omitempty" db:"facebook_link" gorm:"type:varchar(120)"`
	WebsiteLink        string                      `json:"website_link,omitempty" db:"website_link" gorm:"type:varchar(120)"`
	SeekingTalent      bool                        `json:"seeking_talent" db:"seeking_talent" gorm:"not null;default:false"`
	SeekingDescription string                      `json:"seeking_description,omitempty" db:"seeking_description" gorm:"type:varchar(200)"`

	Shows []Show `json:"shows,omitempty" gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:CASCADE"`
}
