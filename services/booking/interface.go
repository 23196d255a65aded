package booking

import (
	"context"

	bookingRepo "tripnest/database/repository/booking"
	listingRepo "tripnest/database/repository/listing"
	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/models"
	"tripnest/utils"
)

// BookingService is the transactional core of the marketplace: booking
// creation with pricing and settlement scheduling, role-scoped reads, status
// transitions, and payment status changes. Actor is nil for unauthenticated
// (guest) callers.
type BookingService interface {
	CreateBooking(ctx context.Context, input *models.CreateBookingInput, actor *utils.Actor) (*models.Booking, error)
	GetBooking(ctx context.Context, actor *utils.Actor, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, actor *utils.Actor, filter models.BookingListFilter) ([]*models.Booking, error)
	Transition(ctx context.Context, actor *utils.Actor, id string, input *models.StatusTransitionInput) (*models.Booking, error)

	InitiatePayment(ctx context.Context, actor *utils.Actor, id string) (*models.Booking, string, error)
	ConfirmPayment(ctx context.Context, actor *utils.Actor, id, paymentRef string) (*models.Booking, error)
	RefundPayment(ctx context.Context, actor *utils.Actor, id string) (*models.Booking, error)

	GetSettlement(ctx context.Context, actor *utils.Actor, id string) (*models.Settlement, error)
	GetSettlementForBooking(ctx context.Context, actor *utils.Actor, bookingID string) (*models.Settlement, error)
	ListSettlements(ctx context.Context, actor *utils.Actor, filter settlementRepo.SettlementListFilter) ([]*models.Settlement, error)
}

// TaskEnqueuer schedules deferred settlement work. Implemented by the asynq
// client in cron; enqueue failures are recoverable because the worker also
// sweeps by scheduled date.
type TaskEnqueuer interface {
	EnqueueSettlementDue(settlement *models.Settlement) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	ListingRepo    listingRepo.ListingRepository
	BookingRepo    bookingRepo.BookingRepository
	SettlementRepo settlementRepo.SettlementRepository
	Enqueuer       TaskEnqueuer
}
