package services

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/utils"
)

const (
	RecentBookingsLimit = 10
	exportSheet         = "Bookings"
)

type Dashboard struct {
	Stats          repository.DashboardStats `json:"stats"`
	RecentBookings []models.Booking          `json:"recent_bookings"`
}

type AdminService struct {
	store  *repository.Store
	hotels *HotelService
}

// NewAdminService builds the admin service. hotels may be nil; it is used to
// drop cached catalog data after hotel edits.
func NewAdminService(store *repository.Store, hotels *HotelService) *AdminService {
	return &AdminService{store: store, hotels: hotels}
}

func (s *AdminService) Dashboard(ctx context.Context, actor models.Actor) (Dashboard, error) {
	if !actor.IsAdmin {
		return Dashboard{}, fmt.Errorf("dashboard: %w", models.ErrForbidden)
	}
	st, err := s.store.Stats(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	recent, err := s.store.ListBookings(ctx, models.BookingFilter{Limit: RecentBookingsLimit})
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Stats: st, RecentBookings: recent}, nil
}

// ListHotels pages through every hotel, inactive ones included.
func (s *AdminService) ListHotels(ctx context.Context, actor models.Actor, f models.HotelFilter) (models.Page[models.Hotel], error) {
	if !actor.IsAdmin {
		return models.Page[models.Hotel]{}, fmt.Errorf("list hotels: %w", models.ErrForbidden)
	}
	if err := f.Normalize(); err != nil {
		return models.Page[models.Hotel]{}, err
	}
	f.IncludeInactive = true
	return s.store.ListHotels(ctx, f)
}

// HotelUpdate toggles catalog visibility; nil fields are left unchanged.
type HotelUpdate struct {
	IsActive   *bool
	IsFeatured *bool
}

func (s *AdminService) UpdateHotel(ctx context.Context, actor models.Actor, hotelID uint, u HotelUpdate) (models.Hotel, error) {
	if !actor.IsAdmin {
		return models.Hotel{}, fmt.Errorf("update hotel %d: %w", hotelID, models.ErrForbidden)
	}
	updates := map[string]interface{}{}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	if u.IsFeatured != nil {
		updates["is_featured"] = *u.IsFeatured
	}
	if len(updates) == 0 {
		return models.Hotel{}, fmt.Errorf("%w: nothing to update", models.ErrInvalidInput)
	}

	h, err := s.store.UpdateHotel(ctx, hotelID, updates)
	if err != nil {
		return models.Hotel{}, err
	}
	if s.hotels != nil {
		s.hotels.InvalidateFeatured(ctx)
	}
	log.WithFields(log.Fields{"hotel_id": hotelID, "updates": updates}).Info("hotel updated")
	return h, nil
}

// RoomUpdate is an admin edit of a room; nil fields are left unchanged.
type RoomUpdate struct {
	PricePerNight *float64
	MaxOccupancy  *int
	IsAvailable   *bool
}

// UpdateRoom changes price, occupancy or the manual availability flag. Existing
// bookings keep the total they were created with.
func (s *AdminService) UpdateRoom(ctx context.Context, actor models.Actor, roomID uint, u RoomUpdate) (models.Room, error) {
	if !actor.IsAdmin {
		return models.Room{}, fmt.Errorf("update room %d: %w", roomID, models.ErrForbidden)
	}
	updates := map[string]interface{}{}
	if u.PricePerNight != nil {
		if *u.PricePerNight <= 0 {
			return models.Room{}, fmt.Errorf("%w: price_per_night must be positive", models.ErrInvalidInput)
		}
		updates["price_per_night"] = *u.PricePerNight
	}
	if u.MaxOccupancy != nil {
		if *u.MaxOccupancy < 1 {
			return models.Room{}, fmt.Errorf("%w: max_occupancy must be at least 1", models.ErrInvalidInput)
		}
		updates["max_occupancy"] = *u.MaxOccupancy
	}
	if u.IsAvailable != nil {
		updates["is_available"] = *u.IsAvailable
	}
	if len(updates) == 0 {
		return models.Room{}, fmt.Errorf("%w: nothing to update", models.ErrInvalidInput)
	}

	room, err := s.store.UpdateRoom(ctx, roomID, updates)
	if err != nil {
		return models.Room{}, err
	}
	log.WithFields(log.Fields{"room_id": roomID, "updates": updates}).Info("room updated")
	return room, nil
}

var exportHeaders = []string{
	"Reference", "Guest", "Email", "Hotel", "Room", "Check-in", "Check-out",
	"Nights", "Guests", "Total", "Status", "Payment", "Created",
}

// ExportBookings writes the bookings matching f as an XLSX workbook to w.
// It returns the number of exported rows.
func (s *AdminService) ExportBookings(ctx context.Context, actor models.Actor, f models.BookingFilter, w io.Writer) (int, error) {
	if !actor.IsAdmin {
		return 0, fmt.Errorf("export bookings: %w", models.ErrForbidden)
	}
	if err := f.Validate(); err != nil {
		return 0, err
	}
	bookings, err := s.store.ListBookings(ctx, f)
	if err != nil {
		return 0, err
	}

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", exportSheet); err != nil {
		return 0, fmt.Errorf("error creating sheet: %w", err)
	}

	headerStyle, err := x.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return 0, fmt.Errorf("error creating style: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		x.SetCellValue(exportSheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	x.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)

	for i, b := range bookings {
		row := i + 2
		guest, email, hotel, room := "", "", "", ""
		if b.User != nil {
			guest = b.User.Username
			email = b.User.Email
		}
		if b.Room != nil {
			room = b.Room.RoomNumber
			if b.Room.Hotel != nil {
				hotel = b.Room.Hotel.Name
			}
		}
		values := []interface{}{
			b.ReferenceCode, guest, email, hotel, room,
			utils.FormatDate(b.CheckInDate), utils.FormatDate(b.CheckOutDate),
			b.Nights, b.NumGuests, b.TotalAmount,
			string(b.Status), string(b.PaymentStatus),
			b.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			x.SetCellValue(exportSheet, cell, v)
		}
	}

	x.SetColWidth(exportSheet, "A", "A", 16)
	x.SetColWidth(exportSheet, "B", "D", 22)
	x.SetColWidth(exportSheet, "F", "G", 12)
	x.SetColWidth(exportSheet, "M", "M", 20)

	if err := x.Write(w); err != nil {
		return 0, fmt.Errorf("error writing workbook: %w", err)
	}
	return len(bookings), nil
}
