package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "tripnest/database/repository/booking"
	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/models"
)

// In-memory fakes for the repository interfaces. The booking fake mirrors
// the transactional semantics of the mongo implementation: capacity is
// re-checked before insert and a failure stores neither document.

type fakeListingRepo struct {
	listings map[string]*models.Listing
}

func newFakeListingRepo(listings ...*models.Listing) *fakeListingRepo {
	repo := &fakeListingRepo{listings: map[string]*models.Listing{}}
	for _, l := range listings {
		repo.listings[l.ID] = l
	}
	return repo
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*models.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return listing, nil
}

func (r *fakeListingRepo) ListByVendor(_ context.Context, vendorID string) ([]*models.Listing, error) {
	var out []*models.Listing
	for _, l := range r.listings {
		if l.VendorID == vendorID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) EnsureIndexes() error { return nil }

type fakeBookingRepo struct {
	mu          sync.Mutex
	bookings    map[string]*models.Booking
	settlements *fakeSettlementRepo

	failCreate error
}

func newFakeBookingRepo(settlements *fakeSettlementRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:    map[string]*models.Booking{},
		settlements: settlements,
	}
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter models.BookingListFilter) ([]*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Booking
	for _, b := range r.bookings {
		if filter.StayID != "" && b.StayID != filter.StayID {
			continue
		}
		if filter.VendorID != "" && b.VendorID != filter.VendorID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" || filter.CustomerEmail != "" {
			idMatch := filter.CustomerID != "" && b.CustomerID == filter.CustomerID
			emailMatch := filter.CustomerEmail != "" && b.Customer.Email == filter.CustomerEmail
			if !idMatch && !emailMatch {
				continue
			}
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBookingRepo) SumOverlappingQuantity(_ context.Context, stayID string, demand bookingRepo.RoomDemand, checkIn, checkOut time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sumOverlapping(stayID, demand, checkIn, checkOut), nil
}

func (r *fakeBookingRepo) sumOverlapping(stayID string, demand bookingRepo.RoomDemand, checkIn, checkOut time.Time) int {
	total := 0
	for _, b := range r.bookings {
		if b.StayID != stayID {
			continue
		}
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
			continue
		}
		if !b.CheckIn.Before(checkOut) || !b.CheckOut.After(checkIn) {
			continue
		}
		for _, room := range b.Rooms {
			if demand.RoomID != "" && room.RoomID == demand.RoomID {
				total += room.Quantity
			} else if demand.RoomID == "" && room.RoomName == demand.RoomName {
				total += room.Quantity
			}
		}
	}
	return total
}

func (r *fakeBookingRepo) CreateWithSettlement(_ context.Context, booking *models.Booking, settlement *models.Settlement, demands []bookingRepo.RoomDemand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreate != nil {
		return r.failCreate
	}
	for _, demand := range demands {
		held := r.sumOverlapping(booking.StayID, demand, booking.CheckIn, booking.CheckOut)
		if demand.Capacity > 0 && held+demand.Quantity > demand.Capacity {
			return bookingRepo.ErrRoomUnavailable
		}
	}

	copied := *booking
	r.bookings[booking.ID] = &copied
	r.settlements.put(settlement)
	return nil
}

func (r *fakeBookingRepo) TransitionStatus(_ context.Context, id, fromStatus, toStatus string, version int64, cancelledAt *time.Time, reason string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.Status != fromStatus || b.Version != version {
		return nil, bookingRepo.ErrStaleBooking
	}
	b.Status = toStatus
	b.Version++
	b.UpdatedAt = time.Now().UTC()
	if cancelledAt != nil {
		b.CancelledAt = cancelledAt
	}
	if reason != "" {
		if b.Metadata == nil {
			b.Metadata = map[string]string{}
		}
		b.Metadata["cancelReason"] = reason
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) TransitionPayment(_ context.Context, id, fromPayment, toPayment string, version int64, paymentRef string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.PaymentStatus != fromPayment || b.Version != version {
		return nil, bookingRepo.ErrStaleBooking
	}
	b.PaymentStatus = toPayment
	b.Version++
	b.UpdatedAt = time.Now().UTC()
	if paymentRef != "" {
		if b.Metadata == nil {
			b.Metadata = map[string]string{}
		}
		b.Metadata["paymentRef"] = paymentRef
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeSettlementRepo struct {
	mu          sync.Mutex
	settlements map[string]*models.Settlement
}

func newFakeSettlementRepo() *fakeSettlementRepo {
	return &fakeSettlementRepo{settlements: map[string]*models.Settlement{}}
}

func (r *fakeSettlementRepo) put(s *models.Settlement) {
	copied := *s
	r.settlements[s.ID] = &copied
}

func (r *fakeSettlementRepo) GetByID(_ context.Context, id string) (*models.Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settlements[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSettlementRepo) GetByBookingID(_ context.Context, bookingID string) (*models.Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.settlements {
		if s.BookingID == bookingID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeSettlementRepo) List(_ context.Context, filter settlementRepo.SettlementListFilter) ([]*models.Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Settlement
	for _, s := range r.settlements {
		if filter.VendorID != "" && s.VendorID != filter.VendorID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSettlementRepo) MarkDue(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settlements[id]
	if !ok || s.Status != models.SettlementStatusPending {
		return 0, nil
	}
	s.Status = models.SettlementStatusDue
	return 1, nil
}

func (r *fakeSettlementRepo) MarkDueBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var modified int64
	for _, s := range r.settlements {
		if s.Status == models.SettlementStatusPending && !s.ScheduledDate.After(cutoff) {
			s.Status = models.SettlementStatusDue
			modified++
		}
	}
	return modified, nil
}

func (r *fakeSettlementRepo) EnsureIndexes() error { return nil }

func (r *fakeSettlementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.settlements)
}

var errStorageDown = errors.New("storage down")
