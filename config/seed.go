package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking/models"
)

type seedRoomType struct {
	Name         string
	Code         string
	Price        float64
	MaxOccupancy int
}

var seedRoomTypes = []seedRoomType{
	{"Deluxe Room", "DE", 15000, 2},
	{"Executive Suite", "EX", 25000, 2},
	{"Presidential Suite", "PR", 50000, 4},
	{"Garden View Room", "GA", 18000, 2},
	{"Sea View Room", "SE", 22000, 2},
	{"Heritage Suite", "HE", 35000, 3},
}

var seedHotels = []models.Hotel{
	{
		Name:        "Grand Palace Hotel",
		Description: "An iconic luxury hotel overlooking the Gateway of India and the Arabian Sea.",
		Address:     "Apollo Bunder, Colaba", City: "Mumbai", State: "Maharashtra", Country: "India", ZipCode: "400001",
		Phone: "+91 22 6665 3366", Email: "mumbai@luxuryhotels.com", StarRating: 5, IsFeatured: true,
	},
	{
		Name:        "Lakeview Palace",
		Description: "A romantic palace hotel floating on Lake Pichola.",
		Address:     "Lake Pichola", City: "Udaipur", State: "Rajasthan", Country: "India", ZipCode: "313001",
		Phone: "+91 294 242 8800", Email: "udaipur@luxuryhotels.com", StarRating: 5, IsFeatured: true,
	},
	{
		Name:        "Royal Heights Palace",
		Description: "A heritage palace hotel with panoramic views over the city.",
		Address:     "Engine Bowli, Falaknuma", City: "Hyderabad", State: "Telangana", Country: "India", ZipCode: "500053",
		Phone: "+91 40 6629 8585", Email: "hyderabad@luxuryhotels.com", StarRating: 5, IsFeatured: true,
	},
	{
		Name:        "Oceanview Resort",
		Description: "A contemporary hotel in Bandra West with sea views.",
		Address:     "Bandra West", City: "Mumbai", State: "Maharashtra", Country: "India", ZipCode: "400050",
		Phone: "+91 22 6668 1234", Email: "oceanview@luxuryhotels.com", StarRating: 4,
	},
	{
		Name:        "Garden Palace",
		Description: "A heritage hotel set in twenty acres of gardens.",
		Address:     "Race Course Road", City: "Bangalore", State: "Karnataka", Country: "India", ZipCode: "560001",
		Phone: "+91 80 6660 5660", Email: "bangalore@luxuryhotels.com", StarRating: 5,
	},
	{
		Name:        "Business Center Hotel",
		Description: "A business hotel in the heart of Chennai.",
		Address:     "Mahatma Gandhi Road, Nungambakkam", City: "Chennai", State: "Tamil Nadu", Country: "India", ZipCode: "600034",
		Phone: "+91 44 6600 0000", Email: "chennai@luxuryhotels.com", StarRating: 4,
	},
}

// SeedDatabase inserts demo users, hotels and rooms into an empty database.
// It is a no-op once any hotel exists.
func SeedDatabase(db *gorm.DB) error {
	var hotelCount int64
	if err := db.Model(&models.Hotel{}).Count(&hotelCount).Error; err != nil {
		return err
	}
	if hotelCount > 0 {
		log.Info("seed skipped: hotels already present")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedUsers(tx); err != nil {
			return err
		}

		amenities := datatypes.JSON(`["Free WiFi","Spa","Pool","Restaurant"]`)
		for i := range seedHotels {
			h := seedHotels[i]
			h.IsActive = true
			h.Amenities = amenities
			if err := tx.Create(&h).Error; err != nil {
				return fmt.Errorf("seed hotel %s: %w", h.Name, err)
			}

			rooms := make([]models.Room, 0, len(seedRoomTypes)*2)
			for t, rt := range seedRoomTypes {
				for n := 1; n <= 2; n++ {
					rooms = append(rooms, models.Room{
						HotelID:       h.ID,
						RoomNumber:    fmt.Sprintf("%s%02d%02d", rt.Code, t+1, n),
						RoomType:      rt.Name,
						Description:   fmt.Sprintf("Luxurious %s with modern amenities.", rt.Name),
						PricePerNight: rt.Price,
						MaxOccupancy:  rt.MaxOccupancy,
						IsAvailable:   true,
					})
				}
			}
			if err := tx.Create(&rooms).Error; err != nil {
				return fmt.Errorf("seed rooms of %s: %w", h.Name, err)
			}
		}
		log.WithField("hotels", len(seedHotels)).Info("demo data seeded")
		return nil
	})
}

func seedUsers(tx *gorm.DB) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{{
		Username:     "admin",
		Email:        "admin@luxuryhotels.com",
		PasswordHash: string(adminHash),
		FirstName:    "Admin",
		LastName:     "User",
		IsAdmin:      true,
	}}
	for i := 1; i <= 5; i++ {
		users = append(users, models.User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(userHash),
			FirstName:    fmt.Sprintf("User%d", i),
			LastName:     "Test",
		})
	}

	for _, u := range users {
		var n int64
		if err := tx.Model(&models.User{}).Where("username = ?", u.Username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := tx.Create(&u).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}
	return nil
}
