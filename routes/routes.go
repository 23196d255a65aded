package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripnest/handlers"
	"tripnest/middleware"
	"tripnest/utils"
)

// RegisterBookingRoutes registers all endpoints for the booking core.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookings := r.Group("/api/bookings")
	{
		// Guests may create bookings; a valid token enriches the record
		// with the customer id.
		bookings.POST("", middleware.ActorAuth(true), bh.CreateBooking)

		authed := bookings.Group("")
		authed.Use(middleware.ActorAuth(false))
		authed.GET("", bh.ListBookings)
		authed.GET("/:id", bh.GetBooking)
		authed.PATCH("/:id/status", bh.UpdateBookingStatus)
		authed.GET("/:id/settlement", bh.GetBookingSettlement)
		authed.POST("/:id/payment", bh.InitiatePayment)
		authed.POST("/:id/payment/confirm", middleware.RequireStaff(), bh.ConfirmPayment)
		authed.POST("/:id/payment/refund", middleware.RequireRoles(utils.RoleAdmin), bh.RefundPayment)
	}

	settlements := r.Group("/api/settlements")
	settlements.Use(middleware.ActorAuth(false), middleware.RequireStaff())
	{
		settlements.GET("", bh.ListSettlements)
		settlements.GET("/:id", bh.GetSettlement)
	}

	r.GET("/healthz", handlers.Healthz)
}

// CORSMiddleware returns the CORS policy for browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
