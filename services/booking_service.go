// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"hotel-booking/metrics"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/utils"
)

// Notifier is told about booking changes. Failures are logged, never returned.
type Notifier interface {
	BookingCreated(b models.Booking) error
	BookingStatusChanged(b models.Booking) error
}

type CreateBookingInput struct {
	RoomID          uint
	CheckIn         time.Time
	CheckOut        time.Time
	NumGuests       int
	SpecialRequests string
}

// BookingService is the booking lifecycle manager. Every call takes the acting
// user explicitly; authorization is decided here, not by the caller.
type BookingService struct {
	store    *repository.Store
	pricing  *PricingEngine
	metrics  *metrics.Metrics
	notifier Notifier
}

func NewBookingService(store *repository.Store, pricing *PricingEngine, m *metrics.Metrics, n Notifier) *BookingService {
	return &BookingService{store: store, pricing: pricing, metrics: m, notifier: n}
}

// Quote prices a stay and checks that the room is bookable, without reserving it.
func (s *BookingService) Quote(ctx context.Context, roomID uint, checkIn, checkOut time.Time, numGuests int) (Quote, error) {
	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return Quote{}, err
	}
	q, err := s.pricing.Quote(room, checkIn, checkOut, numGuests)
	if err != nil {
		return Quote{}, err
	}
	if err := s.pricing.CheckAvailability(ctx, s.store, room, q.CheckIn, q.CheckOut); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// Availability reports whether the room can be booked for the range. Only
// RoomUnavailable is folded into the boolean; other failures are returned.
func (s *BookingService) Availability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	in, out, _, err := s.pricing.ValidateRange(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	err = s.pricing.CheckAvailability(ctx, s.store, room, in, out)
	if errors.Is(err, models.ErrRoomUnavailable) {
		return false, nil
	}
	return err == nil, err
}

// Create reserves the room. Lock, quote, overlap check and insert run in one
// transaction, so two overlapping requests cannot both succeed.
func (s *BookingService) Create(ctx context.Context, actor models.Actor, in CreateBookingInput) (models.Booking, error) {
	if actor.ID == 0 {
		return models.Booking{}, fmt.Errorf("create booking: %w", models.ErrUnauthenticated)
	}

	var created models.Booking
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		room, err := tx.LockRoom(ctx, in.RoomID)
		if err != nil {
			return err
		}
		q, err := s.pricing.Quote(room, in.CheckIn, in.CheckOut, in.NumGuests)
		if err != nil {
			return err
		}
		if err := s.pricing.CheckAvailability(ctx, tx, room, q.CheckIn, q.CheckOut); err != nil {
			return err
		}

		created = models.Booking{
			UserID:          actor.ID,
			RoomID:          room.ID,
			ReferenceCode:   utils.NewBookingReference(),
			CheckInDate:     q.CheckIn,
			CheckOutDate:    q.CheckOut,
			NumGuests:       q.NumGuests,
			Nights:          q.Nights,
			TotalAmount:     q.TotalAmount,
			Status:          models.StatusPending,
			PaymentStatus:   models.PaymentPending,
			SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		}
		return tx.CreateBooking(ctx, &created)
	})
	if err != nil {
		s.metrics.BookingRejected(models.Kind(err))
		log.WithFields(log.Fields{
			"room_id": in.RoomID,
			"user_id": actor.ID,
			"reason":  models.Kind(err),
		}).WithError(err).Info("booking rejected")
		return models.Booking{}, err
	}

	s.metrics.BookingCreated(created.TotalAmount)
	log.WithFields(log.Fields{
		"booking_id": created.ID,
		"reference":  created.ReferenceCode,
		"room_id":    created.RoomID,
		"user_id":    created.UserID,
		"nights":     created.Nights,
		"total":      created.TotalAmount,
	}).Info("booking created")

	full, err := s.store.GetBooking(ctx, created.ID)
	if err != nil {
		// already committed; hand back what we inserted
		log.WithError(err).WithField("booking_id", created.ID).Warn("reload after create failed")
		return created, nil
	}
	s.notify(full, true)
	return full, nil
}

// View returns the booking to its owner or to an admin.
func (s *BookingService) View(ctx context.Context, actor models.Actor, bookingID uint) (models.Booking, error) {
	b, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if !b.OwnedBy(actor) && !actor.IsAdmin {
		return models.Booking{}, fmt.Errorf("view booking %d: %w", bookingID, models.ErrForbidden)
	}
	return b, nil
}

// Cancel is allowed to the owner only, and only while the booking is pending.
func (s *BookingService) Cancel(ctx context.Context, actor models.Actor, bookingID uint) (models.Booking, error) {
	b, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if !b.OwnedBy(actor) {
		return models.Booking{}, fmt.Errorf("cancel booking %d: %w", bookingID, models.ErrForbidden)
	}
	return s.transition(ctx, b, models.StatusCancelled, "cancelled_at")
}

// Confirm is admin-only and moves pending to confirmed. Any other current
// status is rejected rather than silently re-confirmed.
func (s *BookingService) Confirm(ctx context.Context, actor models.Actor, bookingID uint) (models.Booking, error) {
	if !actor.IsAdmin {
		return models.Booking{}, fmt.Errorf("confirm booking %d: %w", bookingID, models.ErrForbidden)
	}
	b, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	return s.transition(ctx, b, models.StatusConfirmed, "confirmed_at")
}

// Complete is admin-only: confirmed to completed, once the checkout date is reached.
func (s *BookingService) Complete(ctx context.Context, actor models.Actor, bookingID uint) (models.Booking, error) {
	if !actor.IsAdmin {
		return models.Booking{}, fmt.Errorf("complete booking %d: %w", bookingID, models.ErrForbidden)
	}
	b, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if b.Status == models.StatusConfirmed && s.pricing.Today().Before(models.DateOnly(b.CheckOutDate)) {
		return models.Booking{}, fmt.Errorf("complete booking %d: stay ends %s: %w",
			bookingID, utils.FormatDate(b.CheckOutDate), models.ErrInvalidTransition)
	}
	return s.transition(ctx, b, models.StatusCompleted, "completed_at")
}

func (s *BookingService) ListForUser(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	if actor.ID == 0 {
		return nil, fmt.Errorf("list bookings: %w", models.ErrUnauthenticated)
	}
	return s.store.ListBookingsByUser(ctx, actor.ID)
}

func (s *BookingService) ListAll(ctx context.Context, actor models.Actor, f models.BookingFilter) ([]models.Booking, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("list all bookings: %w", models.ErrForbidden)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.store.ListBookings(ctx, f)
}

func (s *BookingService) transition(ctx context.Context, b models.Booking, to models.BookingStatus, stampColumn string) (models.Booking, error) {
	if !b.Status.CanTransitionTo(to) {
		return models.Booking{}, fmt.Errorf("booking %d: %s -> %s: %w", b.ID, b.Status, to, models.ErrInvalidTransition)
	}
	now := s.pricing.Now().UTC()
	if err := s.store.UpdateBookingStatus(ctx, b.ID, b.Status, to, map[string]interface{}{stampColumn: now}); err != nil {
		return models.Booking{}, err
	}

	s.metrics.BookingTransitioned(to.String())
	log.WithFields(log.Fields{
		"booking_id": b.ID,
		"from":       b.Status,
		"to":         to,
	}).Info("booking status changed")

	updated, err := s.store.GetBooking(ctx, b.ID)
	if err != nil {
		return models.Booking{}, err
	}
	s.notify(updated, false)
	return updated, nil
}

func (s *BookingService) notify(b models.Booking, created bool) {
	if s.notifier == nil {
		return
	}
	var err error
	if created {
		err = s.notifier.BookingCreated(b)
	} else {
		err = s.notifier.BookingStatusChanged(b)
	}
	if err != nil {
		log.WithError(err).WithField("booking_id", b.ID).Warn("booking notification failed")
	}
}
