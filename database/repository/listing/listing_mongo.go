// File: database/repository/listing/listing_mongo.go
package listingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tripnest/database"
	"tripnest/models"
)

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo constructs a new MongoDB ListingRepository.
func NewMongoListingRepo() ListingRepository {
	return &mongoListingRepo{
		coll: database.Collection("listings"),
	}
}

func (r *mongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch listing %s: %w", id, err)
	}
	return &listing, nil
}

func (r *mongoListingRepo) ListByVendor(ctx context.Context, vendorID string) ([]*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"vendorId": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list listings for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)

	var listings []*models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}
