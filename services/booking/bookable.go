package booking

import (
	"tripnest/models"
)

// PricedLineItem is a resolved room/option with its authoritative pricing,
// copied from the listing at booking time.
type PricedLineItem struct {
	RoomID        string
	RoomName      string
	PricePerNight int64
	Taxes         int64
	MaxGuests     int
	TotalUnits    int
}

// Bookable is the capability a listing must expose to be booked. Stays,
// tours, adventures, and vehicle rentals all satisfy it through the shared
// listing document; the booking and pricing logic is written once against
// this interface.
type Bookable interface {
	BookableID() string
	IsActive() bool
	Vendor() string
	Currency() string
	ResolveLineItem(ref models.RoomSelection) (*PricedLineItem, error)
}

type listingBookable struct {
	listing *models.Listing
}

// AsBookable adapts a listing document to the Bookable capability.
func AsBookable(l *models.Listing) Bookable {
	return &listingBookable{listing: l}
}

func (b *listingBookable) BookableID() string { return b.listing.ID }
func (b *listingBookable) IsActive() bool     { return b.listing.IsActive }
func (b *listingBookable) Vendor() string     { return b.listing.VendorID }
func (b *listingBookable) Currency() string   { return b.listing.Currency }

// ResolveLineItem matches a requested room first by id, then by name.
func (b *listingBookable) ResolveLineItem(ref models.RoomSelection) (*PricedLineItem, error) {
	for i := range b.listing.Rooms {
		room := &b.listing.Rooms[i]
		if ref.RoomID != "" && room.ID == ref.RoomID {
			return pricedItem(room), nil
		}
	}
	for i := range b.listing.Rooms {
		room := &b.listing.Rooms[i]
		if ref.RoomName != "" && room.Name == ref.RoomName {
			return pricedItem(room), nil
		}
	}
	return nil, &LineItemNotFoundError{Ref: lineItemRef(ref)}
}

func pricedItem(room *models.RoomOption) *PricedLineItem {
	return &PricedLineItem{
		RoomID:        room.ID,
		RoomName:      room.Name,
		PricePerNight: room.Price,
		Taxes:         room.Taxes,
		MaxGuests:     room.MaxGuests,
		TotalUnits:    room.TotalUnits,
	}
}

func lineItemRef(ref models.RoomSelection) string {
	if ref.RoomID != "" {
		return ref.RoomID
	}
	return ref.RoomName
}
