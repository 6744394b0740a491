package repository

import (
	"context"

	"hotel-booking/models"
)

func (s *Store) CreateReview(ctx context.Context, r *models.Review) error {
	return translate("create review", s.db.WithContext(ctx).Create(r).Error)
}

// VerifiedReviews returns the latest verified reviews of a hotel with author usernames.
func (s *Store) VerifiedReviews(ctx context.Context, hotelID uint, limit int) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, users.username AS author").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.hotel_id = ? AND reviews.is_verified = ?", hotelID, true).
		Order("reviews.created_at DESC").
		Order("reviews.id DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, translate("list reviews", err)
}

// AverageRating is the mean verified rating of a hotel, 0 when it has none.
func (s *Store) AverageRating(ctx context.Context, hotelID uint) (float64, error) {
	var avg float64
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("hotel_id = ? AND is_verified = ?", hotelID, true).
		Scan(&avg).Error
	return avg, translate("average rating", err)
}
