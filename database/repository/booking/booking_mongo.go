// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripnest/database"
	"tripnest/models"
)

type mongoBookingRepo struct {
	bookingColl    *mongo.Collection
	settlementColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository. The
// settlement collection handle is needed because booking creation writes
// both documents inside one transaction.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		bookingColl:    database.Collection("bookings"),
		settlementColl: database.Collection("settlements"),
	}
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) List(ctx context.Context, filter models.BookingListFilter) ([]*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.StayID != "" {
		query["stayId"] = filter.StayID
	}
	if filter.VendorID != "" {
		query["vendorId"] = filter.VendorID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	// A customer matches by id or by booking-time email snapshot: guest
	// bookings carry no customerId.
	if filter.CustomerID != "" || filter.CustomerEmail != "" {
		var or []bson.M
		if filter.CustomerID != "" {
			or = append(or, bson.M{"customerId": filter.CustomerID})
		}
		if filter.CustomerEmail != "" {
			or = append(or, bson.M{"customer.email": filter.CustomerEmail})
		}
		query["$or"] = or
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
