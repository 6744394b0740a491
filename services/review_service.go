package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"hotel-booking/models"
	"hotel-booking/repository"
)

type CreateReviewInput struct {
	HotelID uint
	Rating  int
	Title   string
	Comment string
}

type ReviewService struct {
	store *repository.Store
}

func NewReviewService(store *repository.Store) *ReviewService {
	return &ReviewService{store: store}
}

// Create stores a review. It is marked verified, and so shown publicly, only
// when the author has a completed stay at the hotel.
func (s *ReviewService) Create(ctx context.Context, actor models.Actor, in CreateReviewInput) (models.Review, error) {
	if actor.ID == 0 {
		return models.Review{}, fmt.Errorf("create review: %w", models.ErrUnauthenticated)
	}
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		return models.Review{}, fmt.Errorf("%w: rating must be between %d and %d",
			models.ErrInvalidInput, models.MinRating, models.MaxRating)
	}
	title := strings.TrimSpace(in.Title)
	if n := utf8.RuneCountInString(title); n < models.MinReviewTitle || n > models.MaxReviewTitle {
		return models.Review{}, fmt.Errorf("%w: title must be %d-%d characters",
			models.ErrInvalidInput, models.MinReviewTitle, models.MaxReviewTitle)
	}
	comment := strings.TrimSpace(in.Comment)
	if n := utf8.RuneCountInString(comment); n < models.MinReviewComment || n > models.MaxReviewComment {
		return models.Review{}, fmt.Errorf("%w: comment must be %d-%d characters",
			models.ErrInvalidInput, models.MinReviewComment, models.MaxReviewComment)
	}

	if _, err := s.store.GetHotel(ctx, in.HotelID); err != nil {
		return models.Review{}, err
	}
	stayed, err := s.store.HasCompletedStay(ctx, actor.ID, in.HotelID)
	if err != nil {
		return models.Review{}, err
	}

	r := models.Review{
		UserID:     actor.ID,
		HotelID:    in.HotelID,
		Rating:     in.Rating,
		Title:      title,
		Comment:    comment,
		IsVerified: stayed,
	}
	if err := s.store.CreateReview(ctx, &r); err != nil {
		return models.Review{}, err
	}
	r.Author = actor.Username

	log.WithFields(log.Fields{
		"review_id": r.ID,
		"hotel_id":  r.HotelID,
		"user_id":   r.UserID,
		"verified":  r.IsVerified,
	}).Info("review created")
	return r, nil
}
