package booking

import (
	"context"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tripnest/models"
	"tripnest/utils"
)

// ValidatedItem is one resolved, quantity-checked line item.
type ValidatedItem struct {
	PricedLineItem
	Quantity int
	Addons   []string
}

// ValidatedBooking is the output of request validation: everything the
// pricing and persistence steps need, already resolved against the listing.
type ValidatedBooking struct {
	Listing  Bookable
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Items    []ValidatedItem
	Guests   models.GuestCount
	Customer models.CustomerInfo
	Currency string
}

// CalculateNights returns the billable night count for a stay window:
// the elapsed time rounded up to whole days, never less than 1. A sub-day
// window (late check-in, early check-out) still bills one night.
func CalculateNights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// parseStayDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseStayDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// validateRequest resolves and checks a raw booking request against the
// listing store. It performs no writes.
func (s *DefaultBookingService) validateRequest(ctx context.Context, input *models.CreateBookingInput) (*ValidatedBooking, error) {
	listing, err := s.ListingRepo.GetByID(ctx, input.StayID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{Resource: "listing", ID: input.StayID}
		}
		return nil, &PersistenceError{Op: "fetch listing", Err: err}
	}
	bookable := AsBookable(listing)
	if !bookable.IsActive() {
		return nil, &NotFoundError{Resource: "listing", ID: input.StayID}
	}

	checkIn, err := parseStayDate(input.CheckIn)
	if err != nil {
		return nil, &InvalidDateRangeError{Message: "checkIn is not a valid date"}
	}
	checkOut, err := parseStayDate(input.CheckOut)
	if err != nil {
		return nil, &InvalidDateRangeError{Message: "checkOut is not a valid date"}
	}
	if !checkOut.After(checkIn) {
		return nil, &InvalidDateRangeError{Message: "checkOut must be after checkIn"}
	}
	nights := CalculateNights(checkIn, checkOut)

	if len(input.Rooms) == 0 {
		return nil, &EmptyLineItemsError{}
	}

	items := make([]ValidatedItem, 0, len(input.Rooms))
	for _, ref := range input.Rooms {
		resolved, err := bookable.ResolveLineItem(ref)
		if err != nil {
			return nil, err
		}
		if ref.Quantity <= 0 {
			return nil, &InvalidQuantityError{Ref: lineItemRef(ref), Quantity: ref.Quantity}
		}
		items = append(items, ValidatedItem{
			PricedLineItem: *resolved,
			Quantity:       ref.Quantity,
			Addons:         ref.Addons,
		})
	}

	if strings.TrimSpace(input.Customer.Name) == "" {
		return nil, &MissingCustomerInfoError{Field: "name"}
	}
	if strings.TrimSpace(input.Customer.Email) == "" {
		return nil, &MissingCustomerInfoError{Field: "email"}
	}

	guests := input.Guests
	if guests.Adults < 1 {
		return nil, &ValidationError{Message: "at least one adult guest is required"}
	}
	if guests.Children < 0 || guests.Infants < 0 {
		return nil, &ValidationError{Message: "guest counts cannot be negative"}
	}

	// The listing's currency is authoritative; a mismatching request
	// currency is ignored, same as client-supplied pricing.
	currency := bookable.Currency()
	if input.Currency != "" && !strings.EqualFold(input.Currency, currency) {
		utils.GetLogger().Debug("ignoring client currency override",
			zap.String("requested", input.Currency), zap.String("listing", currency))
	}

	return &ValidatedBooking{
		Listing:  bookable,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Nights:   nights,
		Items:    items,
		Guests:   guests,
		Customer: input.Customer,
		Currency: currency,
	}, nil
}
