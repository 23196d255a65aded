package booking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "tripnest/database/repository/booking"
	"tripnest/models"
	"tripnest/utils"
)

// allowedTransitions is the booking lifecycle state machine. Completed and
// cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
	models.BookingStatusCompleted: {},
	models.BookingStatusCancelled: {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func validStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Transition moves a booking through its lifecycle. The owning vendor or an
// admin may confirm, complete, or cancel; the owning customer may only
// cancel, and only from pending or confirmed. The write is a compare-and-
// swap on the status and version read here, so a concurrent vendor-confirm
// and customer-cancel cannot both win.
func (s *DefaultBookingService) Transition(ctx context.Context, actor *utils.Actor, id string, input *models.StatusTransitionInput) (*models.Booking, error) {
	if actor == nil {
		return nil, &UnauthorizedTransitionError{Message: "authentication required"}
	}
	target := input.Status
	if !validStatus(target) {
		return nil, &ValidationError{Message: "unknown status " + target}
	}

	booking, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{Resource: "booking", ID: id}
		}
		return nil, &PersistenceError{Op: "fetch booking", Err: err}
	}

	if !transitionAllowed(booking.Status, target) {
		return nil, &InvalidTransitionError{From: booking.Status, To: target}
	}
	if err := authorizeTransition(actor, booking, target); err != nil {
		return nil, err
	}

	var cancelledAt *time.Time
	var reason string
	if target == models.BookingStatusCancelled {
		now := time.Now().UTC()
		cancelledAt = &now
		reason = input.Reason
	}

	updated, err := s.BookingRepo.TransitionStatus(ctx, id, booking.Status, target, booking.Version, cancelledAt, reason)
	if err != nil {
		if err == bookingRepo.ErrStaleBooking {
			return nil, &ConflictError{Message: "booking was updated concurrently, retry"}
		}
		return nil, &PersistenceError{Op: "update booking status", Err: err}
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingId", id),
		zap.String("from", booking.Status),
		zap.String("to", target),
		zap.String("role", actor.Role))

	return updated, nil
}

func authorizeTransition(actor *utils.Actor, booking *models.Booking, target string) error {
	switch actor.Role {
	case utils.RoleAdmin:
		return nil
	case utils.RoleVendor:
		if actor.VendorID != booking.VendorID {
			return &UnauthorizedTransitionError{Message: "booking belongs to another vendor"}
		}
		return nil
	case utils.RoleCustomer:
		if !customerOwnsBooking(actor, booking) {
			return &UnauthorizedTransitionError{Message: "booking belongs to another customer"}
		}
		if target != models.BookingStatusCancelled {
			return &UnauthorizedTransitionError{Message: "customers may only cancel bookings"}
		}
		return nil
	}
	return &UnauthorizedTransitionError{Message: "unknown role"}
}
