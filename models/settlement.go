package models

import "time"

// Settlement states. A settlement is created pending alongside its booking,
// flipped to due by the worker when its scheduled date arrives, and marked
// paid by the payout process.
const (
	SettlementStatusPending = "pending"
	SettlementStatusDue     = "due"
	SettlementStatusPaid    = "paid"
)

// Settlement represents money owed from the platform to a vendor for exactly
// one booking. It is created in the same transaction as the booking and must
// never exist without it.
type Settlement struct {
	ID        string `bson:"id" json:"id"`
	BookingID string `bson:"bookingId" json:"bookingId"`
	StayID    string `bson:"stayId" json:"stayId"`
	VendorID  string `bson:"vendorId" json:"vendorId"`

	AmountDue  int64  `bson:"amountDue" json:"amountDue"`
	AmountPaid int64  `bson:"amountPaid" json:"amountPaid"`
	Currency   string `bson:"currency" json:"currency"`

	ScheduledDate time.Time `bson:"scheduledDate" json:"scheduledDate"`
	Status        string    `bson:"status" json:"status"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
