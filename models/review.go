package models

import "time"

const (
	MinRating = 1
	MaxRating = 5

	MinReviewTitle   = 5
	MaxReviewTitle   = 100
	MinReviewComment = 10
	MaxReviewComment = 1000
)

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	HotelID    uint      `gorm:"column:hotel_id;index;not null" json:"hotel_id"`
	Rating     int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Title      string    `gorm:"size:100" json:"title"`
	Comment    string    `gorm:"type:text" json:"comment"`
	IsVerified bool      `gorm:"column:is_verified;not null" json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// read from a join on users; never written or migrated
	Author string `gorm:"->;-:migration" json:"author,omitempty"`
}
