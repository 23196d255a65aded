package models

import "time"

// Booking lifecycle states.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment states of a booking.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// CustomerInfo is the contact snapshot embedded on a booking. Bookings by
// guests carry no CustomerID, so the snapshot is the only record of who booked.
type CustomerInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// GuestCount breaks down the party size. Adults is always at least 1.
type GuestCount struct {
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
	Infants  int `bson:"infants" json:"infants"`
}

// BookingRoom is one priced line item of a booking. Monetary fields are in
// minor currency units and are frozen at creation time; later price changes
// on the listing never alter a stored booking.
type BookingRoom struct {
	RoomID        string   `bson:"roomId,omitempty" json:"roomId,omitempty"`
	RoomName      string   `bson:"roomName" json:"roomName"`
	Quantity      int      `bson:"quantity" json:"quantity"`
	PricePerNight int64    `bson:"pricePerNight" json:"pricePerNight"`
	Taxes         int64    `bson:"taxes" json:"taxes"`
	Nights        int      `bson:"nights" json:"nights"`
	Total         int64    `bson:"total" json:"total"`
	Addons        []string `bson:"addons,omitempty" json:"addons,omitempty"`
}

// Booking represents one reservation against one listing. Bookings are
// historical records: they are created once, mutated only by status
// transitions, and never deleted.
type Booking struct {
	ID         string       `bson:"id" json:"id"`
	StayID     string       `bson:"stayId" json:"stayId"`
	VendorID   string       `bson:"vendorId" json:"vendorId"`
	CustomerID string       `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Customer   CustomerInfo `bson:"customer" json:"customer"`

	CheckIn  time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut time.Time `bson:"checkOut" json:"checkOut"`
	Nights   int       `bson:"nights" json:"nights"`

	Guests GuestCount    `bson:"guests" json:"guests"`
	Rooms  []BookingRoom `bson:"rooms" json:"rooms"`

	Currency    string `bson:"currency" json:"currency"`
	Subtotal    int64  `bson:"subtotal" json:"subtotal"`
	Taxes       int64  `bson:"taxes" json:"taxes"`
	Fees        int64  `bson:"fees" json:"fees"`
	TotalAmount int64  `bson:"totalAmount" json:"totalAmount"`

	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`

	Metadata    map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CancelledAt *time.Time        `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`

	// Version guards read-modify-write status updates.
	Version   int64     `bson:"version" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsTerminal reports whether no further status transition is possible.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}
