// File: database/repository/booking/updates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripnest/models"
)

func (r *mongoBookingRepo) TransitionStatus(ctx context.Context, id, fromStatus, toStatus string, version int64, cancelledAt *time.Time, reason string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":    toStatus,
		"updatedAt": time.Now().UTC(),
	}
	if cancelledAt != nil {
		set["cancelledAt"] = *cancelledAt
	}
	if reason != "" {
		set["metadata.cancelReason"] = reason
	}

	return r.casUpdate(ctx, bson.M{
		"id":      id,
		"status":  fromStatus,
		"version": version,
	}, set)
}

func (r *mongoBookingRepo) TransitionPayment(ctx context.Context, id, fromPayment, toPayment string, version int64, paymentRef string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"paymentStatus": toPayment,
		"updatedAt":     time.Now().UTC(),
	}
	if paymentRef != "" {
		set["metadata.paymentRef"] = paymentRef
	}

	return r.casUpdate(ctx, bson.M{
		"id":            id,
		"paymentStatus": fromPayment,
		"version":       version,
	}, set)
}

// casUpdate applies a compare-and-swap update: the filter pins the expected
// state and version, the version is bumped on success. A miss means the
// booking changed underneath the caller.
func (r *mongoBookingRepo) casUpdate(ctx context.Context, filter, set bson.M) (*models.Booking, error) {
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.bookingColl.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStaleBooking
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &updated, nil
}
