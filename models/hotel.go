package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model

	Name        string `gorm:"size:200;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100;index" json:"city"`
	State       string `gorm:"size:100" json:"state"`
	Country     string `gorm:"size:100" json:"country"`
	ZipCode     string `gorm:"column:zip_code;size:20" json:"zip_code"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:150" json:"email"`
	Website     string `gorm:"size:255" json:"website"`
	StarRating  int    `gorm:"column:star_rating" json:"star_rating"`
	IsActive    bool   `gorm:"column:is_active;not null" json:"is_active"`
	IsFeatured  bool   `gorm:"column:is_featured;not null" json:"is_featured"`

	// JSON array of amenity labels
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
