package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"hotel-booking/cache"
	"hotel-booking/models"
	"hotel-booking/repository"
)

const (
	FeaturedLimit      = 6
	DetailReviewsLimit = 10

	featuredCacheKey = "hotels:featured"
	featuredCacheTTL = 5 * time.Minute
)

// HotelDetail is a hotel page: bookable rooms plus its latest verified reviews.
type HotelDetail struct {
	Hotel          models.Hotel    `json:"hotel"`
	AvailableRooms []models.Room   `json:"available_rooms"`
	Reviews        []models.Review `json:"reviews"`
	AverageRating  float64         `json:"average_rating"`
}

type HotelService struct {
	store *repository.Store
	cache cache.Cache
}

// NewHotelService caches read-mostly listings in c; nil disables caching.
func NewHotelService(store *repository.Store, c cache.Cache) *HotelService {
	if c == nil {
		c = cache.Noop{}
	}
	return &HotelService{store: store, cache: c}
}

func (s *HotelService) List(ctx context.Context, f models.HotelFilter) (models.Page[models.Hotel], error) {
	if err := f.Normalize(); err != nil {
		return models.Page[models.Hotel]{}, err
	}
	return s.store.ListHotels(ctx, f)
}

// Featured is served from the cache when possible. Cache errors only degrade to a DB read.
func (s *HotelService) Featured(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	hit, err := s.cache.Get(ctx, featuredCacheKey, &hotels)
	if err != nil {
		log.WithError(err).Warn("featured hotels cache read failed")
	}
	if hit {
		return hotels, nil
	}

	hotels, err = s.store.FeaturedHotels(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, featuredCacheKey, hotels, featuredCacheTTL); err != nil {
		log.WithError(err).Warn("featured hotels cache write failed")
	}
	return hotels, nil
}

// InvalidateFeatured drops the cached featured listing after catalog changes.
func (s *HotelService) InvalidateFeatured(ctx context.Context) {
	if err := s.cache.Del(ctx, featuredCacheKey); err != nil {
		log.WithError(err).Warn("featured hotels cache invalidation failed")
	}
}

func (s *HotelService) Detail(ctx context.Context, hotelID uint) (HotelDetail, error) {
	h, err := s.store.GetHotel(ctx, hotelID)
	if err != nil {
		return HotelDetail{}, err
	}
	if !h.IsActive {
		return HotelDetail{}, models.ErrNotFound
	}

	rooms, err := s.store.AvailableRooms(ctx, hotelID)
	if err != nil {
		return HotelDetail{}, err
	}
	reviews, err := s.store.VerifiedReviews(ctx, hotelID, DetailReviewsLimit)
	if err != nil {
		return HotelDetail{}, err
	}
	avg, err := s.store.AverageRating(ctx, hotelID)
	if err != nil {
		return HotelDetail{}, err
	}
	return HotelDetail{Hotel: h, AvailableRooms: rooms, Reviews: reviews, AverageRating: avg}, nil
}

func (s *HotelService) Reviews(ctx context.Context, hotelID uint, limit int) ([]models.Review, error) {
	if _, err := s.store.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > models.MaxPerPage {
		limit = DetailReviewsLimit
	}
	return s.store.VerifiedReviews(ctx, hotelID, limit)
}
