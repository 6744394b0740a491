package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-booking/models"
)

func preloadBooking(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Room").Preload("Room.Hotel")
}

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	return translate("create booking", s.db.WithContext(ctx).Omit("User", "Room").Create(b).Error)
}

// GetBooking returns the booking with its user, room and hotel loaded.
func (s *Store) GetBooking(ctx context.Context, id uint) (models.Booking, error) {
	var b models.Booking
	err := preloadBooking(s.db.WithContext(ctx)).First(&b, id).Error
	return b, translate("get booking", err)
}

// FindOverlapping returns the bookings of roomID that still occupy the room and
// intersect [checkIn, checkOut). Checkout days are free.
func (s *Store) FindOverlapping(ctx context.Context, roomID uint, checkIn, checkOut time.Time) ([]models.Booking, error) {
	var list []models.Booking
	err := s.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("status IN ?", models.OccupyingStatuses()).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Order("check_in_date ASC").
		Find(&list).Error
	return list, translate("find overlapping bookings", err)
}

// UpdateBookingStatus moves a booking from one status to another. The update
// is conditional on the current status, so a concurrent change makes it fail
// with ErrInvalidTransition instead of overwriting.
func (s *Store) UpdateBookingStatus(ctx context.Context, id uint, from, to models.BookingStatus, extra map[string]interface{}) error {
	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return translate("update booking status", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking %d is no longer %s: %w", id, from, models.ErrInvalidTransition)
	}
	return nil
}

func (s *Store) ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	list := []models.Booking{}
	err := s.db.WithContext(ctx).
		Preload("Room").
		Preload("Room.Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error
	return list, translate("list user bookings", err)
}

// ListBookings returns all bookings matching f, newest first.
func (s *Store) ListBookings(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	list := []models.Booking{}
	q := preloadBooking(s.db.WithContext(ctx))
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.RoomID != nil {
		q = q.Where("room_id = ?", *f.RoomID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	err := q.Order("created_at DESC").Order("id DESC").Find(&list).Error
	return list, translate("list bookings", err)
}

// HasCompletedStay reports whether userID has a completed booking at hotelID.
func (s *Store) HasCompletedStay(ctx context.Context, userID, hotelID uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.user_id = ? AND rooms.hotel_id = ? AND bookings.status = ?", userID, hotelID, models.StatusCompleted).
		Count(&n).Error
	if err != nil {
		return false, translate("count completed stays", err)
	}
	return n > 0, nil
}
