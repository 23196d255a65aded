// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"tripnest/models"
)

// Sentinel errors surfaced by the booking repository. The service layer maps
// them onto its own error taxonomy.
var (
	// ErrRoomUnavailable means the transactional availability re-check found
	// insufficient remaining units for at least one requested room.
	ErrRoomUnavailable = errors.New("insufficient room availability")

	// ErrStaleBooking means a compare-and-swap update matched no document:
	// the booking changed concurrently or is not in the expected state.
	ErrStaleBooking = errors.New("booking was modified concurrently")
)

// RoomDemand carries what the availability re-check inside the booking
// transaction needs for one requested room: how many units are wanted and how
// many the listing has in total.
type RoomDemand struct {
	RoomID   string
	RoomName string
	Quantity int
	Capacity int
}

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingListFilter) ([]*models.Booking, error)

	// CreateWithSettlement inserts the booking and its settlement in one
	// multi-document transaction, re-checking room availability against
	// overlapping pending/confirmed bookings before committing. Either both
	// documents are stored or neither is.
	CreateWithSettlement(ctx context.Context, booking *models.Booking, settlement *models.Settlement, demands []RoomDemand) error

	// SumOverlappingQuantity returns the number of units of the given room
	// already held by pending/confirmed bookings whose stay window overlaps
	// [checkIn, checkOut).
	SumOverlappingQuantity(ctx context.Context, stayID string, demand RoomDemand, checkIn, checkOut time.Time) (int, error)

	// TransitionStatus moves a booking from one lifecycle status to another
	// with optimistic concurrency: the update only applies if the booking
	// still has the expected status and version. Returns the updated
	// document, or ErrStaleBooking on a lost race.
	TransitionStatus(ctx context.Context, id, fromStatus, toStatus string, version int64, cancelledAt *time.Time, reason string) (*models.Booking, error)

	// TransitionPayment moves the payment status under the same CAS rules
	// and optionally records the payment reference in booking metadata.
	TransitionPayment(ctx context.Context, id, fromPayment, toPayment string, version int64, paymentRef string) (*models.Booking, error)

	EnsureIndexes() error
}
