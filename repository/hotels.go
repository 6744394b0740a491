package repository

import (
	"context"
	"strings"

	"gorm.io/gorm/clause"

	"hotel-booking/models"
)

func (s *Store) CreateHotel(ctx context.Context, h *models.Hotel) error {
	return translate("create hotel", s.db.WithContext(ctx).Create(h).Error)
}

func (s *Store) CreateRoom(ctx context.Context, r *models.Room) error {
	return translate("create room", s.db.WithContext(ctx).Create(r).Error)
}

func (s *Store) GetHotel(ctx context.Context, id uint) (models.Hotel, error) {
	var h models.Hotel
	err := s.db.WithContext(ctx).First(&h, id).Error
	return h, translate("get hotel", err)
}

// ListHotels returns one page of hotels matching f, active ones only unless
// f.IncludeInactive. f must be normalized.
func (s *Store) ListHotels(ctx context.Context, f models.HotelFilter) (models.Page[models.Hotel], error) {
	page := models.Page[models.Hotel]{Page: f.Page, PerPage: f.PerPage, Items: []models.Hotel{}}

	q := s.db.WithContext(ctx).Model(&models.Hotel{})
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if f.City != nil {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(*f.City)+"%")
	}
	if f.StarRating != nil {
		q = q.Where("star_rating = ?", *f.StarRating)
	}
	if f.Query != nil {
		like := "%" + strings.ToLower(*f.Query) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(description) LIKE ?)", like, like, like)
	}

	if err := q.Count(&page.Total).Error; err != nil {
		return page, translate("count hotels", err)
	}
	if err := q.Order("id ASC").Offset(f.Offset()).Limit(f.PerPage).Find(&page.Items).Error; err != nil {
		return page, translate("list hotels", err)
	}
	return page, nil
}

func (s *Store) FeaturedHotels(ctx context.Context, limit int) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	err := s.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("id ASC").
		Limit(limit).
		Find(&hotels).Error
	return hotels, translate("featured hotels", err)
}

// AvailableRooms lists the rooms of a hotel whose manual availability flag is set.
func (s *Store) AvailableRooms(ctx context.Context, hotelID uint) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.db.WithContext(ctx).
		Where("hotel_id = ? AND is_available = ?", hotelID, true).
		Order("price_per_night ASC, room_number ASC").
		Find(&rooms).Error
	return rooms, translate("available rooms", err)
}

func (s *Store) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	var r models.Room
	err := s.db.WithContext(ctx).Preload("Hotel").First(&r, id).Error
	return r, translate("get room", err)
}

// LockRoom reads the room with SELECT ... FOR UPDATE. Must be called on a
// transaction-bound Store; it serializes concurrent bookings of the same room.
func (s *Store) LockRoom(ctx context.Context, id uint) (models.Room, error) {
	var r models.Room
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&r, id).Error
	return r, translate("lock room", err)
}

// UpdateHotel applies the given column updates to a hotel and returns it reloaded.
func (s *Store) UpdateHotel(ctx context.Context, id uint, updates map[string]interface{}) (models.Hotel, error) {
	if err := s.db.WithContext(ctx).Model(&models.Hotel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Hotel{}, translate("update hotel", err)
	}
	return s.GetHotel(ctx, id)
}

// UpdateRoom applies the given column updates to a room and returns it reloaded.
func (s *Store) UpdateRoom(ctx context.Context, id uint, updates map[string]interface{}) (models.Room, error) {
	res := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return models.Room{}, translate("update room", res.Error)
	}
	// RowsAffected is 0 on MySQL when nothing changed, so existence comes from the reload
	return s.GetRoom(ctx, id)
}
