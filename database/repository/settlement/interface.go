// File: database/repository/settlement/interface.go
package settlementRepo

import (
	"context"
	"time"

	"tripnest/models"
)

// SettlementListFilter scopes a settlement list query.
type SettlementListFilter struct {
	VendorID string
	Status   string
}

// SettlementRepository defines data access for vendor settlements. New
// settlements are only ever written by the booking transaction; this
// interface covers reads and the due-date rollover.
type SettlementRepository interface {
	GetByID(ctx context.Context, id string) (*models.Settlement, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Settlement, error)
	List(ctx context.Context, filter SettlementListFilter) ([]*models.Settlement, error)

	// MarkDue flips a pending settlement to due. Returns the number of
	// documents updated (0 when the settlement already moved on).
	MarkDue(ctx context.Context, id string) (int64, error)

	// MarkDueBefore flips every pending settlement whose scheduled date has
	// passed. Used by the worker sweep to recover from lost enqueues.
	MarkDueBefore(ctx context.Context, cutoff time.Time) (int64, error)

	EnsureIndexes() error
}
