// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tripnest/models"
)

// roomMatch matches a booking line item against a room demand, preferring
// the id reference and falling back to the name snapshot.
func roomMatch(demand RoomDemand) bson.M {
	if demand.RoomID != "" {
		return bson.M{"roomId": demand.RoomID}
	}
	return bson.M{"roomName": demand.RoomName}
}

// overlapFilter selects pending/confirmed bookings on the listing whose stay
// window intersects [checkIn, checkOut).
func overlapFilter(stayID string, checkIn, checkOut time.Time) bson.M {
	return bson.M{
		"stayId":   stayID,
		"status":   bson.M{"$in": bson.A{models.BookingStatusPending, models.BookingStatusConfirmed}},
		"checkIn":  bson.M{"$lt": checkOut},
		"checkOut": bson.M{"$gt": checkIn},
	}
}

func (r *mongoBookingRepo) SumOverlappingQuantity(ctx context.Context, stayID string, demand RoomDemand, checkIn, checkOut time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.sumOverlapping(ctx, stayID, demand, checkIn, checkOut)
}

func (r *mongoBookingRepo) sumOverlapping(ctx context.Context, stayID string, demand RoomDemand, checkIn, checkOut time.Time) (int, error) {
	match := overlapFilter(stayID, checkIn, checkOut)
	match["rooms"] = bson.M{"$elemMatch": roomMatch(demand)}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$unwind", Value: "$rooms"}},
		bson.D{{Key: "$match", Value: roomMatchUnwound(demand)}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$rooms.quantity"},
		}}},
	}

	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("failed to decode overlap aggregate: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

func roomMatchUnwound(demand RoomDemand) bson.M {
	if demand.RoomID != "" {
		return bson.M{"rooms.roomId": demand.RoomID}
	}
	return bson.M{"rooms.roomName": demand.RoomName}
}

// CreateWithSettlement inserts the booking and its settlement atomically.
// Availability is re-checked inside the transaction so that two concurrent
// requests for the last unit of a room cannot both commit.
func (r *mongoBookingRepo) CreateWithSettlement(ctx context.Context, booking *models.Booking, settlement *models.Settlement, demands []RoomDemand) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		for _, demand := range demands {
			held, err := r.sumOverlapping(sc, booking.StayID, demand, booking.CheckIn, booking.CheckOut)
			if err != nil {
				return err
			}
			if demand.Capacity > 0 && held+demand.Quantity > demand.Capacity {
				return ErrRoomUnavailable
			}
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		if _, err := r.settlementColl.InsertOne(sc, settlement); err != nil {
			return fmt.Errorf("insert settlement failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrRoomUnavailable {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
