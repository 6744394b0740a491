package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

type createReviewPayload struct {
	Rating  int    `json:"rating" binding:"required"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

type HotelController struct {
	Hotels  *services.HotelService
	Reviews *services.ReviewService
}

func NewHotelController(hotels *services.HotelService, reviews *services.ReviewService) *HotelController {
	return &HotelController{Hotels: hotels, Reviews: reviews}
}

// hotelFilter reads ?city=&star_rating=&q=&page=&per_page=.
func hotelFilter(c *gin.Context) (models.HotelFilter, bool) {
	var f models.HotelFilter
	if city, ok := c.GetQuery("city"); ok {
		f.City = &city
	}
	if q, ok := c.GetQuery("q"); ok {
		f.Query = &q
	}
	if raw := c.Query("star_rating"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "invalid star_rating")
			return f, false
		}
		f.StarRating = &n
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PerPage, _ = strconv.Atoi(c.Query("per_page"))
	return f, true
}

// ----------------------------------------------------
// GET /api/hotels?city=&star_rating=&q=&page=&per_page=
// ----------------------------------------------------

func (hc *HotelController) List(c *gin.Context) {
	f, ok := hotelFilter(c)
	if !ok {
		return
	}

	page, err := hc.Hotels.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, page)
}

func (hc *HotelController) Featured(c *gin.Context) {
	hotels, err := hc.Hotels.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (hc *HotelController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := hc.Hotels.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detail)
}

func (hc *HotelController) ListReviews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	reviews, err := hc.Hotels.Reviews(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

// POST /api/hotels/:id/reviews (auth)
func (hc *HotelController) CreateReview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p createReviewPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid payload: "+err.Error())
		return
	}

	review, err := hc.Reviews.Create(c.Request.Context(), middleware.CurrentActor(c), services.CreateReviewInput{
		HotelID: id,
		Rating:  p.Rating,
		Title:   p.Title,
		Comment: p.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}
