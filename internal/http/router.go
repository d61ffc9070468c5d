package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "travelmavericks/internal/config"
	h "travelmavericks/internal/http/handlers"
	"travelmavericks/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)
		auth.GET("/me", middleware.JWTAuth([]byte(env.JWTSecret)), h.Me)

		// Public catalog
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)

		// Checkout and booking lookup
		bookings := api.Group("/bookings")
		bookings.POST("/quote", h.QuoteBooking)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:reference", h.GetBooking)
		bookings.GET("/:reference/eticket", h.GetETicket)
		bookings.GET("/:reference/invoice", h.GetInvoice)

		// Contact form
		api.POST("/contact", h.SubmitContact)

		// Admin dashboard
		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth([]byte(env.JWTSecret)), middleware.RequireRoles("admin"))
		{
			admin.GET("/bookings", h.ListBookings)
			admin.GET("/bookings/export", h.ExportBookings)
			admin.PUT("/bookings/:reference/status", h.UpdateBookingStatus)

			admin.POST("/trips", h.CreateTrip)
			admin.PUT("/trips/:id", h.UpdateTrip)
			admin.DELETE("/trips/:id", h.DeleteTrip)

			admin.GET("/customers", h.ListCustomers)
			admin.GET("/customers/:email", h.GetCustomer)
			admin.POST("/customers/:email/discount-code", h.IssueDiscountCode)

			admin.GET("/analytics/overview", h.GetAnalyticsOverview)
			admin.GET("/analytics/destinations", h.GetPopularDestinations)
			admin.GET("/analytics/monthly-revenue", h.GetMonthlyRevenue)
			admin.GET("/analytics/trends", h.GetDailyTrend)
			admin.GET("/analytics/loyalty", h.GetLoyaltyDistribution)
		}
	}

	return r
}
