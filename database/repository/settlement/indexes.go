// File: database/repository/settlement/indexes.go
package settlementRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the settlements collection.
func (r *mongoSettlementRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Exactly one settlement per booking.
		{
			Keys:    bson.D{{Key: "bookingId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_booking_id"),
		},
		{
			Keys:    bson.D{{Key: "vendorId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("vendor_status_idx"),
		},
		// Worker sweep query.
		{
			Keys:    bson.D{{Key: "scheduledDate", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("scheduled_status_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create settlement indexes: %w", err)
	}
	return nil
}
