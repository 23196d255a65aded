package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tripnest/config"
	bookingRepo "tripnest/database/repository/booking"
	"tripnest/models"
	"tripnest/utils"
)

// CreateBooking runs the full pipeline: validate against the listing, price
// the line items, persist booking and settlement in one transaction, and
// schedule the settlement-due task.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input *models.CreateBookingInput, actor *utils.Actor) (*models.Booking, error) {
	validated, err := s.validateRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	demands := roomDemands(validated.Items)

	// Fail fast on obviously unavailable rooms; the transaction re-checks
	// so a race here cannot oversell.
	for i, demand := range demands {
		held, err := s.BookingRepo.SumOverlappingQuantity(ctx, validated.Listing.BookableID(), demand, validated.CheckIn, validated.CheckOut)
		if err != nil {
			return nil, &PersistenceError{Op: "check availability", Err: err}
		}
		if demand.Capacity > 0 && held+demand.Quantity > demand.Capacity {
			return nil, &RoomUnavailableError{Ref: validated.Items[i].RoomName}
		}
	}

	totals := ComputeTotals(validated.Nights, validated.Items, config.AppConfig.PlatformFeeMinor)

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		StayID:        validated.Listing.BookableID(),
		VendorID:      validated.Listing.Vendor(),
		Customer:      validated.Customer,
		CheckIn:       validated.CheckIn,
		CheckOut:      validated.CheckOut,
		Nights:        validated.Nights,
		Guests:        validated.Guests,
		Rooms:         totals.Lines,
		Currency:      validated.Currency,
		Subtotal:      totals.Subtotal,
		Taxes:         totals.Taxes,
		Fees:          totals.Fees,
		TotalAmount:   totals.TotalAmount,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if actor != nil && actor.Role == utils.RoleCustomer {
		booking.CustomerID = actor.CustomerID
	}
	booking.Metadata = bookingMetadata(input)

	settlement := buildSettlement(booking, now)

	if err := s.BookingRepo.CreateWithSettlement(ctx, booking, settlement, demands); err != nil {
		if err == bookingRepo.ErrRoomUnavailable {
			return nil, &RoomUnavailableError{Ref: firstRoomName(validated.Items)}
		}
		return nil, &PersistenceError{Op: "create booking", Err: err}
	}

	s.enqueueSettlementDue(settlement)

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("stayId", booking.StayID),
		zap.String("vendorId", booking.VendorID),
		zap.Int64("totalAmount", booking.TotalAmount),
		zap.String("currency", booking.Currency))

	return booking, nil
}

func bookingMetadata(input *models.CreateBookingInput) map[string]string {
	meta := map[string]string{}
	if input.Source != "" {
		meta["source"] = input.Source
	}
	if input.Notes != "" {
		meta["notes"] = input.Notes
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

func roomDemands(items []ValidatedItem) []bookingRepo.RoomDemand {
	demands := make([]bookingRepo.RoomDemand, 0, len(items))
	for _, item := range items {
		demands = append(demands, bookingRepo.RoomDemand{
			RoomID:   item.RoomID,
			RoomName: item.RoomName,
			Quantity: item.Quantity,
			Capacity: item.TotalUnits,
		})
	}
	return demands
}

func firstRoomName(items []ValidatedItem) string {
	if len(items) == 0 {
		return ""
	}
	return items[0].RoomName
}

// GetBooking fetches one booking, restricted to callers allowed to see it.
func (s *DefaultBookingService) GetBooking(ctx context.Context, actor *utils.Actor, id string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{Resource: "booking", ID: id}
		}
		return nil, &PersistenceError{Op: "fetch booking", Err: err}
	}
	if !canViewBooking(actor, booking) {
		// Hide existence from callers outside the booking.
		return nil, &NotFoundError{Resource: "booking", ID: id}
	}
	return booking, nil
}

// ListBookings returns bookings scoped to the caller's role: admins see all
// and may filter freely, vendors see their own, customers see bookings
// matching their id or email.
func (s *DefaultBookingService) ListBookings(ctx context.Context, actor *utils.Actor, filter models.BookingListFilter) ([]*models.Booking, error) {
	if actor == nil {
		return nil, &UnauthorizedTransitionError{Message: "authentication required"}
	}

	switch actor.Role {
	case utils.RoleAdmin:
		// filter passes through as given.
	case utils.RoleVendor:
		filter.VendorID = actor.VendorID
		filter.CustomerID = ""
		filter.CustomerEmail = ""
	case utils.RoleCustomer:
		filter.VendorID = ""
		filter.CustomerID = actor.CustomerID
		filter.CustomerEmail = actor.Email
	default:
		return nil, &UnauthorizedTransitionError{Message: "unknown role"}
	}

	bookings, err := s.BookingRepo.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

func canViewBooking(actor *utils.Actor, booking *models.Booking) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case utils.RoleAdmin:
		return true
	case utils.RoleVendor:
		return actor.VendorID == booking.VendorID
	case utils.RoleCustomer:
		return customerOwnsBooking(actor, booking)
	}
	return false
}

func customerOwnsBooking(actor *utils.Actor, booking *models.Booking) bool {
	if actor.CustomerID != "" && actor.CustomerID == booking.CustomerID {
		return true
	}
	return actor.Email != "" && actor.Email == booking.Customer.Email
}
