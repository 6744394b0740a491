package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking/services"
	"hotel-booking/utils"
)

type RoomController struct {
	Bookings *services.BookingService
}

func NewRoomController(bookings *services.BookingService) *RoomController {
	return &RoomController{Bookings: bookings}
}

// stayQuery reads ?check_in=&check_out= as civil dates.
func stayQuery(c *gin.Context) (time.Time, time.Time, bool) {
	in, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		badRequest(c, "check_in: "+err.Error())
		return time.Time{}, time.Time{}, false
	}
	out, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		badRequest(c, "check_out: "+err.Error())
		return time.Time{}, time.Time{}, false
	}
	return in, out, true
}

// ----------------------------------------------------
// GET /api/rooms/:id/quote?check_in=&check_out=&guests=
// ----------------------------------------------------

func (rc *RoomController) Quote(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	in, out, ok := stayQuery(c)
	if !ok {
		return
	}
	guests, err := strconv.Atoi(c.DefaultQuery("guests", "1"))
	if err != nil {
		badRequest(c, "invalid guests")
		return
	}

	q, err := rc.Bookings.Quote(c.Request.Context(), id, in, out, guests)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, q)
}

// ----------------------------------------------------
// GET /api/rooms/:id/availability?check_in=&check_out=
// ----------------------------------------------------

func (rc *RoomController) Availability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	in, out, ok := stayQuery(c)
	if !ok {
		return
	}

	available, err := rc.Bookings.Availability(c.Request.Context(), id, in, out)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_id":   id,
		"check_in":  utils.FormatDate(in),
		"check_out": utils.FormatDate(out),
		"available": available,
	})
}
