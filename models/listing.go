package models

import "time"

// Listing kinds. All kinds share the same bookable-unit shape: a stay sells
// rooms, a tour or adventure sells departure options, a vehicle rental sells
// vehicle classes.
const (
	ListingKindStay      = "stay"
	ListingKindTour      = "tour"
	ListingKindAdventure = "adventure"
	ListingKindVehicle   = "vehicle"
)

// RoomOption is one bookable unit on a listing. Price and Taxes are per
// night in minor currency units and are authoritative: booking requests may
// not override them.
type RoomOption struct {
	ID         string   `bson:"_id" json:"_id"`
	Name       string   `bson:"name" json:"name"`
	Price      int64    `bson:"price" json:"price"`
	Taxes      int64    `bson:"taxes" json:"taxes"`
	MaxGuests  int      `bson:"maxGuests,omitempty" json:"maxGuests,omitempty"`
	TotalUnits int      `bson:"totalUnits" json:"totalUnits"`
	Images     []string `bson:"images,omitempty" json:"images,omitempty"`
}

// Listing is a bookable entity owned by a vendor. The booking core reads
// listings and never writes them.
type Listing struct {
	ID       string       `bson:"id" json:"id"`
	Kind     string       `bson:"kind" json:"kind"`
	VendorID string       `bson:"vendorId" json:"vendorId"`
	Title    string       `bson:"title" json:"title"`
	IsActive bool         `bson:"isActive" json:"isActive"`
	Currency string       `bson:"currency" json:"currency"`
	Rooms    []RoomOption `bson:"rooms" json:"rooms"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
