package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// bookingTransitions is the whole state machine; anything not listed is rejected.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible. Unknown statuses count as terminal.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Occupies reports whether a booking in this status holds its room for its date range.
func (s BookingStatus) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s BookingStatus) String() string { return string(s) }

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, s)
	}
	return status, nil
}

// OccupyingStatuses lists the statuses that block a room's dates.
func OccupyingStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusConfirmed}
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID        uint   `gorm:"column:user_id;index;not null" json:"user_id"`
	RoomID        uint   `gorm:"column:room_id;not null;index:idx_booking_room_dates" json:"room_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	// civil dates stored at UTC midnight; check_out is exclusive
	CheckInDate  time.Time `gorm:"column:check_in_date;not null;index:idx_booking_room_dates" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;not null;index:idx_booking_room_dates" json:"check_out_date"`

	NumGuests   int     `gorm:"column:num_guests;not null" json:"num_guests"`
	Nights      int     `gorm:"column:nights;not null" json:"nights"`
	TotalAmount float64 `gorm:"column:total_amount;not null" json:"total_amount"`

	Status          BookingStatus `gorm:"column:status;size:32;not null;index" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"column:payment_status;size:32;not null" json:"payment_status"`
	PaymentMethod   *string       `gorm:"column:payment_method;size:64" json:"payment_method,omitempty"`
	SpecialRequests string        `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	ConfirmedAt *time.Time `gorm:"column:confirmed_at" json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (b Booking) OwnedBy(a Actor) bool {
	return a.ID != 0 && a.ID == b.UserID
}

// Overlaps uses half-open ranges: the checkout day is not occupied.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts calendar days from in to out. It works on Unix seconds
// because time.Duration saturates after about 292 years.
func NightsBetween(in, out time.Time) int {
	return int((DateOnly(out).Unix() - DateOnly(in).Unix()) / 86400)
}
