package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-booking/controllers"
	"hotel-booking/metrics"
	"hotel-booking/middleware"
	"hotel-booking/repository"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Auth     *controllers.AuthController
	Hotels   *controllers.HotelController
	Rooms    *controllers.RoomController
	Bookings *controllers.BookingController
	Admin    *controllers.AdminController

	Tokens   *middleware.TokenIssuer
	Store    *repository.Store
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // nil disables /metrics

	CorsOrigins []string
}

func parseCorsOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, origin := range raw {
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(d.Metrics))

	origins := parseCorsOrigins(d.CorsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		if d.Store != nil {
			if err := d.Store.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	authRequired := middleware.AuthRequired(d.Tokens)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.Auth.Register)
			auth.POST("/login", d.Auth.Login)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", d.Hotels.List)

			// must be registered before /:id
			hotels.GET("/featured", d.Hotels.Featured)

			hotels.GET("/:id", d.Hotels.Detail)
			hotels.GET("/:id/reviews", d.Hotels.ListReviews)
			hotels.POST("/:id/reviews", authRequired, d.Hotels.CreateReview)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/:id/quote", d.Rooms.Quote)
			rooms.GET("/:id/availability", d.Rooms.Availability)
		}

		bookings := api.Group("/bookings", authRequired)
		{
			bookings.POST("", d.Bookings.CreateBooking)
			bookings.GET("/mine", d.Bookings.MyBookings)
			bookings.GET("/:id", d.Bookings.GetBooking)
			bookings.POST("/:id/cancel", d.Bookings.CancelBooking)
		}

		admin := api.Group("/admin", authRequired, middleware.AdminRequired())
		{
			admin.GET("/dashboard", d.Admin.Dashboard)
			admin.GET("/bookings", d.Admin.ListBookings)
			admin.GET("/bookings/export", d.Admin.ExportBookings)
			admin.POST("/bookings/:id/confirm", d.Bookings.ConfirmBooking)
			admin.POST("/bookings/:id/complete", d.Bookings.CompleteBooking)
			admin.GET("/hotels", d.Admin.ListHotels)
			admin.PATCH("/hotels/:id", d.Admin.UpdateHotel)
			admin.PATCH("/rooms/:id", d.Admin.UpdateRoom)
		}
	}

	return r
}
