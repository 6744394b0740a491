package models

import (
	"fmt"
	"strings"
)

const (
	DefaultPerPage = 12
	MaxPerPage     = 100
)

// HotelFilter holds the optional criteria of a hotel listing. Nil means "not filtered".
type HotelFilter struct {
	City       *string
	StarRating *int
	Query      *string
	Page       int
	PerPage    int

	IncludeInactive bool // admin listings only
}

// Normalize validates each criterion and fills paging defaults.
func (f *HotelFilter) Normalize() error {
	if f.City != nil {
		c := strings.TrimSpace(*f.City)
		if c == "" {
			f.City = nil
		} else {
			f.City = &c
		}
	}
	if f.Query != nil {
		q := strings.TrimSpace(*f.Query)
		if q == "" {
			f.Query = nil
		} else {
			f.Query = &q
		}
	}
	if f.StarRating != nil && (*f.StarRating < 1 || *f.StarRating > 5) {
		return fmt.Errorf("%w: star_rating must be between 1 and 5", ErrInvalidInput)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	return nil
}

func (f HotelFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// BookingFilter narrows the admin booking listing.
type BookingFilter struct {
	Status *BookingStatus
	RoomID *uint
	UserID *uint
	Limit  int // 0 means no limit
}

func (f BookingFilter) Validate() error {
	if f.Status != nil && !f.Status.IsValid() {
		return fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, *f.Status)
	}
	if f.RoomID != nil && *f.RoomID == 0 {
		return fmt.Errorf("%w: room_id must be positive", ErrInvalidInput)
	}
	if f.UserID != nil && *f.UserID == 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}
	if f.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	return nil
}

// Page is one page of a listing.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}
