package models

// BookingResponse is the success envelope for single-booking endpoints.
type BookingResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}

// BookingListResponse is the success envelope for booking list endpoints.
type BookingListResponse struct {
	Success  bool       `json:"success"`
	Bookings []*Booking `json:"bookings"`
}

// SettlementResponse is the success envelope for settlement endpoints.
type SettlementResponse struct {
	Success    bool        `json:"success"`
	Settlement *Settlement `json:"settlement"`
}

// SettlementListResponse is the success envelope for settlement list endpoints.
type SettlementListResponse struct {
	Success     bool          `json:"success"`
	Settlements []*Settlement `json:"settlements"`
}
