package models

// RoomSelection is one requested line item. Rooms are matched against the
// listing first by ID, then by name.
type RoomSelection struct {
	RoomID   string   `json:"roomId"`
	RoomName string   `json:"roomName"`
	Quantity int      `json:"quantity"`
	Addons   []string `json:"addons,omitempty"`
}

// CreateBookingInput is the inbound payload for booking creation. Dates
// accept RFC 3339 timestamps or plain YYYY-MM-DD dates.
type CreateBookingInput struct {
	StayID   string          `json:"stayId" binding:"required"`
	CheckIn  string          `json:"checkIn" binding:"required"`
	CheckOut string          `json:"checkOut" binding:"required"`
	Rooms    []RoomSelection `json:"rooms"`
	Guests   GuestCount      `json:"guests"`
	Customer CustomerInfo    `json:"customer"`
	Currency string          `json:"currency,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	Source   string          `json:"source,omitempty"`
}

// StatusTransitionInput is the inbound payload for a status change.
type StatusTransitionInput struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

// BookingListFilter scopes a booking list query. The handler layer fills it
// from query parameters and the caller's role.
type BookingListFilter struct {
	StayID        string
	VendorID      string
	CustomerID    string
	CustomerEmail string
	Status        string
}
