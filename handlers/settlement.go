package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/middleware"
	"tripnest/models"
)

// ListSettlements handles GET /api/settlements. Vendors see their own,
// admins see all and may filter by vendor.
func (h *BookingHandler) ListSettlements(c *gin.Context) {
	filter := settlementRepo.SettlementListFilter{
		VendorID: c.Query("vendorId"),
		Status:   c.Query("status"),
	}

	settlements, err := h.Service.ListSettlements(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if settlements == nil {
		settlements = []*models.Settlement{}
	}

	c.JSON(http.StatusOK, models.SettlementListResponse{Success: true, Settlements: settlements})
}

// GetSettlement handles GET /api/settlements/:id.
func (h *BookingHandler) GetSettlement(c *gin.Context) {
	found, err := h.Service.GetSettlement(c.Request.Context(), middleware.GetActor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SettlementResponse{Success: true, Settlement: found})
}

// GetBookingSettlement handles GET /api/bookings/:id/settlement.
func (h *BookingHandler) GetBookingSettlement(c *gin.Context) {
	found, err := h.Service.GetSettlementForBooking(c.Request.Context(), middleware.GetActor(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SettlementResponse{Success: true, Settlement: found})
}
