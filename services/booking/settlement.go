package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tripnest/config"
	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/models"
	"tripnest/utils"
)

// buildSettlement derives the vendor-payable record for a booking. The
// scheduled date is the checkout plus the configured offset; the amount due
// is the booking total at creation time.
func buildSettlement(b *models.Booking, now time.Time) *models.Settlement {
	offset := time.Duration(config.AppConfig.SettlementOffsetDays) * 24 * time.Hour
	return &models.Settlement{
		ID:            uuid.New().String(),
		BookingID:     b.ID,
		StayID:        b.StayID,
		VendorID:      b.VendorID,
		AmountDue:     b.TotalAmount,
		AmountPaid:    0,
		Currency:      b.Currency,
		ScheduledDate: b.CheckOut.Add(offset),
		Status:        models.SettlementStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// enqueueSettlementDue schedules the due-date rollover task. A failed
// enqueue is only logged: the worker's periodic sweep over scheduledDate
// picks up anything that was lost.
func (s *DefaultBookingService) enqueueSettlementDue(settlement *models.Settlement) {
	if s.Enqueuer == nil {
		return
	}
	if err := s.Enqueuer.EnqueueSettlementDue(settlement); err != nil {
		utils.GetLogger().Warn("failed to enqueue settlement due task",
			zap.String("settlementId", settlement.ID), zap.Error(err))
	}
}

// GetSettlement fetches one settlement, restricted to the owning vendor or
// an admin.
func (s *DefaultBookingService) GetSettlement(ctx context.Context, actor *utils.Actor, id string) (*models.Settlement, error) {
	settlement, err := s.SettlementRepo.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{Resource: "settlement", ID: id}
		}
		return nil, &PersistenceError{Op: "fetch settlement", Err: err}
	}
	if !canViewSettlement(actor, settlement) {
		return nil, &NotFoundError{Resource: "settlement", ID: id}
	}
	return settlement, nil
}

// GetSettlementForBooking fetches the settlement linked to a booking.
func (s *DefaultBookingService) GetSettlementForBooking(ctx context.Context, actor *utils.Actor, bookingID string) (*models.Settlement, error) {
	settlement, err := s.SettlementRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{Resource: "settlement for booking", ID: bookingID}
		}
		return nil, &PersistenceError{Op: "fetch settlement", Err: err}
	}
	if !canViewSettlement(actor, settlement) {
		return nil, &NotFoundError{Resource: "settlement for booking", ID: bookingID}
	}
	return settlement, nil
}

// ListSettlements returns settlements scoped to the caller: admins see all,
// vendors see their own. Customers have no settlement surface.
func (s *DefaultBookingService) ListSettlements(ctx context.Context, actor *utils.Actor, filter settlementRepo.SettlementListFilter) ([]*models.Settlement, error) {
	if actor == nil {
		return nil, &UnauthorizedTransitionError{Message: "authentication required"}
	}

	switch actor.Role {
	case utils.RoleAdmin:
		// filter passes through as given.
	case utils.RoleVendor:
		filter.VendorID = actor.VendorID
	default:
		return nil, &UnauthorizedTransitionError{Message: "settlements are visible to vendors and admins only"}
	}

	settlements, err := s.SettlementRepo.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "list settlements", Err: err}
	}
	return settlements, nil
}

func canViewSettlement(actor *utils.Actor, settlement *models.Settlement) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case utils.RoleAdmin:
		return true
	case utils.RoleVendor:
		return actor.VendorID == settlement.VendorID
	}
	return false
}
