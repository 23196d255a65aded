package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripnest/middleware"
	"tripnest/models"
	"tripnest/services/booking"
	"tripnest/utils"
)

// BookingHandler exposes the booking core over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err)
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), &input, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{Success: true, Booking: created})
}

// ListBookings handles GET /api/bookings. Filters are narrowed by role in
// the service layer.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingListFilter{
		StayID:   c.Query("stayId"),
		VendorID: c.Query("vendorId"),
		Status:   c.Query("status"),
	}

	bookings, err := h.Service.ListBookings(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}

	c.JSON(http.StatusOK, models.BookingListResponse{Success: true, Bookings: bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	found, err := h.Service.GetBooking(c.Request.Context(), middleware.GetActor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{Success: true, Booking: found})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input models.StatusTransitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err)
		return
	}

	updated, err := h.Service.Transition(c.Request.Context(), middleware.GetActor(c), c.Param("id"), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{Success: true, Booking: updated})
}

// InitiatePayment handles POST /api/bookings/:id/payment.
func (h *BookingHandler) InitiatePayment(c *gin.Context) {
	updated, clientSecret, err := h.Service.InitiatePayment(c.Request.Context(), middleware.GetActor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"booking":      updated,
		"clientSecret": clientSecret,
	})
}

// ConfirmPayment handles POST /api/bookings/:id/payment/confirm.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var input struct {
		PaymentRef string `json:"paymentRef"`
	}
	// Body is optional; the reference just has to match when provided.
	_ = c.ShouldBindJSON(&input)

	updated, err := h.Service.ConfirmPayment(c.Request.Context(), middleware.GetActor(c), c.Param("id"), input.PaymentRef)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{Success: true, Booking: updated})
}

// RefundPayment handles POST /api/bookings/:id/payment/refund.
func (h *BookingHandler) RefundPayment(c *gin.Context) {
	updated, err := h.Service.RefundPayment(c.Request.Context(), middleware.GetActor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{Success: true, Booking: updated})
}
