package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	// room_number is unique per hotel, not globally
	HotelID    uint   `json:"hotel_id" gorm:"column:hotel_id;not null;uniqueIndex:idx_hotel_room_number"`
	RoomNumber string `json:"room_number" gorm:"column:room_number;type:varchar(50);not null;uniqueIndex:idx_hotel_room_number"`

	RoomType      string         `json:"room_type" gorm:"column:room_type;type:varchar(100)"`
	Description   string         `json:"description" gorm:"type:text"`
	PricePerNight float64        `json:"price_per_night" gorm:"column:price_per_night;not null"`
	MaxOccupancy  int            `json:"max_occupancy" gorm:"column:max_occupancy;not null"`
	IsAvailable   bool           `json:"is_available" gorm:"column:is_available;not null"`
	Amenities     datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
