package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"hotel-booking/models"
	"hotel-booking/utils"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{models.ErrInvalidDateRange, http.StatusBadRequest},
	{models.ErrOccupancyExceeded, http.StatusBadRequest},
	{models.ErrRoomUnavailable, http.StatusConflict},
	{models.ErrForbidden, http.StatusForbidden},
	{models.ErrInvalidTransition, http.StatusConflict},
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrConflict, http.StatusConflict},
	{models.ErrInvalidInput, http.StatusBadRequest},
	{models.ErrUnauthenticated, http.StatusUnauthorized},
}

// StatusFor maps a core error to its HTTP status; unknown errors are 500.
func StatusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope. Storage and unknown errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		utils.JSONErrorCode(c, status, models.ErrStorageFailure.Error(), "internal server error")
		return
	}
	utils.JSONErrorCode(c, status, models.Kind(err), err.Error())
}

func badRequest(c *gin.Context, message string) {
	utils.JSONErrorCode(c, http.StatusBadRequest, models.ErrInvalidInput.Error(), message)
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// optionalUint reads ?key= as a positive integer. ok is false after a 400 was written.
func optionalUint(c *gin.Context, key string) (*uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		badRequest(c, "invalid "+key)
		return nil, false
	}
	u := uint(v)
	return &u, true
}
