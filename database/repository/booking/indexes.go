// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary availability query: bookings on a listing ordered by check-in.
		{
			Keys:    bson.D{{Key: "stayId", Value: 1}, {Key: "checkIn", Value: 1}},
			Options: options.Index().SetName("stay_checkin_idx"),
		},
		// Vendor dashboard query.
		{
			Keys:    bson.D{{Key: "vendorId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("vendor_status_idx"),
		},
		// Customer lookup by booking-time email snapshot.
		{
			Keys:    bson.D{{Key: "customer.email", Value: 1}},
			Options: options.Index().SetName("customer_email_idx"),
		},
	}

	if _, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
