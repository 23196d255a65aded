// File: database/repository/settlement/settlement_mongo.go
package settlementRepo

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

type mongoSettlementRepo struct {
	coll *mongo.Collection
}

// NewMongoSettlementRepo constructs a new MongoDB SettlementRepository.
func NewMongoSettlementRepo() SettlementRepository {
	return &mongoSettlementRepo{
		coll: database.Collection("settlements"),
	}
}

func (r *mongoSettlementRepo) GetByID(ctx context.Context, id string) (*models.Settlement, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settlement models.Settlement
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&settlement); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch settlement %s: %w", id, err)
	}
	return &settlement, nil
}

func (r *mongoSettlementRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Settlement, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settlement models.Settlement
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&settlement); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch settlement for booking %s: %w", bookingID, err)
	}
	return &settlement, nil
}

func (r *mongoSettlementRepo) List(ctx context.Context, filter SettlementListFilter) ([]*models.Settlement, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.VendorID != "" {
		query["vendorId"] = filter.VendorID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer cursor.Close(ctx)

	var settlements []*models.Settlement
	if err := cursor.All(ctx, &settlements); err != nil {
		return nil, fmt.Errorf("failed to decode settlements: %w", err)
	}
	return settlements, nil
}

func (r *mongoSettlementRepo) MarkDue(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.SettlementStatusPending},
		bson.M{"$set": bson.M{
			"status":    models.SettlementStatusDue,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark settlement %s due: %w", id, err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoSettlementRepo) MarkDueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"status":        models.SettlementStatusPending,
			"scheduledDate": bson.M{"$lte": cutoff},
		},
		bson.M{"$set": bson.M{
			"status":    models.SettlementStatusDue,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep due settlements: %w", err)
	}
	return res.ModifiedCount, nil
}
