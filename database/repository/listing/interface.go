// File: database/repository/listing/interface.go
package listingRepo

import (
	"context"

	"tripnest/models"
)

// ListingRepository defines read access to listings. The booking core never
// writes listings; vendors manage them through their own service.
type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*models.Listing, error)
	EnsureIndexes() error
}
