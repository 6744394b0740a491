package repository

import (
	"context"

	"hotel-booking/models"
)

// DashboardStats is the admin overview.
type DashboardStats struct {
	TotalHotels     int64   `json:"total_hotels"`
	TotalRooms      int64   `json:"total_rooms"`
	TotalBookings   int64   `json:"total_bookings"`
	TotalUsers      int64   `json:"total_users"`
	PendingBookings int64   `json:"pending_bookings"`
	Revenue         float64 `json:"revenue"`
}

func (s *Store) Stats(ctx context.Context) (DashboardStats, error) {
	var st DashboardStats
	db := s.db.WithContext(ctx)

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.Hotel{}, &st.TotalHotels},
		{&models.Room{}, &st.TotalRooms},
		{&models.Booking{}, &st.TotalBookings},
		{&models.User{}, &st.TotalUsers},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return st, translate("dashboard counts", err)
		}
	}

	if err := db.Model(&models.Booking{}).Where("status = ?", models.StatusPending).Count(&st.PendingBookings).Error; err != nil {
		return st, translate("dashboard pending", err)
	}

	// revenue counts confirmed bookings only
	if err := db.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", models.StatusConfirmed).
		Scan(&st.Revenue).Error; err != nil {
		return st, translate("dashboard revenue", err)
	}
	return st, nil
}
