// services/pricing.go
package services

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"
)

// Quote is the computed price of a prospective booking.
type Quote struct {
	RoomID        uint      `json:"room_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	NumGuests     int       `json:"num_guests"`
	Nights        int       `json:"nights"`
	PricePerNight float64   `json:"price_per_night"`
	TotalAmount   float64   `json:"total_amount"`
}

// overlapFinder is the part of the store the availability check needs.
type overlapFinder interface {
	FindOverlapping(ctx context.Context, roomID uint, checkIn, checkOut time.Time) ([]models.Booking, error)
}

// PricingEngine computes quotes and checks room availability. Flat nightly
// rate: no proration, taxes or currency conversion.
type PricingEngine struct {
	now func() time.Time
}

// NewPricingEngine uses now as the clock; nil means time.Now.
func NewPricingEngine(now func() time.Time) *PricingEngine {
	if now == nil {
		now = time.Now
	}
	return &PricingEngine{now: now}
}

func (e *PricingEngine) Now() time.Time {
	return e.now()
}

// Today is the current calendar date at UTC midnight.
func (e *PricingEngine) Today() time.Time {
	return models.DateOnly(e.now())
}

// ValidateRange normalizes the dates and returns the number of nights.
func (e *PricingEngine) ValidateRange(checkIn, checkOut time.Time) (time.Time, time.Time, int, error) {
	in, out := models.DateOnly(checkIn), models.DateOnly(checkOut)
	if !out.After(in) {
		return in, out, 0, fmt.Errorf("%w: check-out %s must be after check-in %s",
			models.ErrInvalidDateRange, utils.FormatDate(out), utils.FormatDate(in))
	}
	if in.Before(e.Today()) {
		return in, out, 0, fmt.Errorf("%w: check-in %s is in the past",
			models.ErrInvalidDateRange, utils.FormatDate(in))
	}
	nights := models.NightsBetween(in, out)
	return in, out, nights, nil
}

func (e *PricingEngine) Quote(room models.Room, checkIn, checkOut time.Time, numGuests int) (Quote, error) {
	in, out, nights, err := e.ValidateRange(checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}
	if numGuests < 1 || numGuests > room.MaxOccupancy {
		return Quote{}, fmt.Errorf("%w: %d guests for room %s (max %d)",
			models.ErrOccupancyExceeded, numGuests, room.RoomNumber, room.MaxOccupancy)
	}
	return Quote{
		RoomID:        room.ID,
		CheckIn:       in,
		CheckOut:      out,
		NumGuests:     numGuests,
		Nights:        nights,
		PricePerNight: room.PricePerNight,
		TotalAmount:   room.PricePerNight * float64(nights),
	}, nil
}

// CheckAvailability fails with ErrRoomUnavailable when the room is closed or
// a pending/confirmed booking overlaps [checkIn, checkOut). For a race-free
// result, call it with a transaction-bound store after locking the room.
func (e *PricingEngine) CheckAvailability(ctx context.Context, store overlapFinder, room models.Room, checkIn, checkOut time.Time) error {
	if !room.IsAvailable {
		return fmt.Errorf("%w: room %s is closed for booking", models.ErrRoomUnavailable, room.RoomNumber)
	}
	conflicts, err := store.FindOverlapping(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		c := conflicts[0]
		return fmt.Errorf("%w: room %s is booked %s to %s", models.ErrRoomUnavailable,
			room.RoomNumber, utils.FormatDate(c.CheckInDate), utils.FormatDate(c.CheckOutDate))
	}
	return nil
}
