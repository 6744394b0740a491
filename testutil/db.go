// Package testutil opens throwaway SQLite databases and inserts fixtures for tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking/config"
	"hotel-booking/models"
)

var seq atomic.Int64

// NewDB returns a migrated SQLite database in a temp dir, closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, admin bool) models.User {
	t.Helper()
	n := seq.Add(1)
	u := models.User{
		Username:     fmt.Sprintf("user%d", n),
		Email:        fmt.Sprintf("user%d@example.com", n),
		PasswordHash: "x",
		IsAdmin:      admin,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func CreateHotel(t *testing.T, db *gorm.DB, name, city string) models.Hotel {
	t.Helper()
	h := models.Hotel{Name: name, City: city, StarRating: 5, IsActive: true}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	return h
}

func CreateRoom(t *testing.T, db *gorm.DB, hotelID uint, price float64, maxOccupancy int, available bool) models.Room {
	t.Helper()
	r := models.Room{
		HotelID:       hotelID,
		RoomNumber:    fmt.Sprintf("R%03d", seq.Add(1)),
		RoomType:      "Deluxe Room",
		PricePerNight: price,
		MaxOccupancy:  maxOccupancy,
		IsAvailable:   available,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return r
}

// CreateBooking inserts a booking directly, bypassing availability checks.
func CreateBooking(t *testing.T, db *gorm.DB, userID uint, room models.Room, in, out time.Time, status models.BookingStatus) models.Booking {
	t.Helper()
	nights := models.NightsBetween(in, out)
	b := models.Booking{
		UserID:        userID,
		RoomID:        room.ID,
		ReferenceCode: fmt.Sprintf("BK-TEST%05d", seq.Add(1)),
		CheckInDate:   in,
		CheckOutDate:  out,
		NumGuests:     1,
		Nights:        nights,
		TotalAmount:   room.PricePerNight * float64(nights),
		Status:        status,
		PaymentStatus: models.PaymentPending,
	}
	if err := db.Omit("User", "Room").Create(&b).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

// Date is a civil date at UTC midnight.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
