package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type updateHotelPayload struct {
	IsActive   *bool `json:"is_active"`
	IsFeatured *bool `json:"is_featured"`
}

type updateRoomPayload struct {
	PricePerNight *float64 `json:"price_per_night"`
	MaxOccupancy  *int     `json:"max_occupancy"`
	IsAvailable   *bool    `json:"is_available"`
}

type AdminController struct {
	Admin    *services.AdminService
	Bookings *services.BookingService
}

func NewAdminController(admin *services.AdminService, bookings *services.BookingService) *AdminController {
	return &AdminController{Admin: admin, Bookings: bookings}
}

// bookingFilter reads ?status=&room_id=&user_id= into a typed filter.
func bookingFilter(c *gin.Context) (models.BookingFilter, bool) {
	var f models.BookingFilter
	if raw := c.Query("status"); raw != "" {
		s, err := models.ParseBookingStatus(raw)
		if err != nil {
			respondError(c, err)
			return f, false
		}
		f.Status = &s
	}
	var ok bool
	if f.RoomID, ok = optionalUint(c, "room_id"); !ok {
		return f, false
	}
	if f.UserID, ok = optionalUint(c, "user_id"); !ok {
		return f, false
	}
	return f, true
}

// GET /api/admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	d, err := ac.Admin.Dashboard(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, d)
}

// GET /api/admin/bookings
func (ac *AdminController) ListBookings(c *gin.Context) {
	f, ok := bookingFilter(c)
	if !ok {
		return
	}
	list, err := ac.Bookings.ListAll(c.Request.Context(), middleware.CurrentActor(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/admin/bookings/export
func (ac *AdminController) ExportBookings(c *gin.Context) {
	f, ok := bookingFilter(c)
	if !ok {
		return
	}

	// buffered so a failed export can still get a JSON error
	var buf bytes.Buffer
	n, err := ac.Admin.ExportBookings(c.Request.Context(), middleware.CurrentActor(c), f, &buf)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	log.WithFields(log.Fields{"rows": n, "file": filename}).Info("bookings exported")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GET /api/admin/hotels
func (ac *AdminController) ListHotels(c *gin.Context) {
	f, ok := hotelFilter(c)
	if !ok {
		return
	}
	page, err := ac.Admin.ListHotels(c.Request.Context(), middleware.CurrentActor(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, page)
}

// PATCH /api/admin/hotels/:id
func (ac *AdminController) UpdateHotel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p updateHotelPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid payload: "+err.Error())
		return
	}
	h, err := ac.Admin.UpdateHotel(c.Request.Context(), middleware.CurrentActor(c), id, services.HotelUpdate{
		IsActive:   p.IsActive,
		IsFeatured: p.IsFeatured,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, h)
}

// PATCH /api/admin/rooms/:id
func (ac *AdminController) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p updateRoomPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid payload: "+err.Error())
		return
	}
	room, err := ac.Admin.UpdateRoom(c.Request.Context(), middleware.CurrentActor(c), id, services.RoomUpdate{
		PricePerNight: p.PricePerNight,
		MaxOccupancy:  p.MaxOccupancy,
		IsAvailable:   p.IsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
