// File: database/repository/listing/cache.go
package listingRepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tripnest/models"
	"tripnest/utils"
)

const (
	listingCachePrefix = "listing:"
	listingCacheTTL    = 5 * time.Minute
)

type cachedListingRepo struct {
	inner ListingRepository
	cache *redis.Client
}

// NewCachedListingRepo wraps a ListingRepository with a Redis read-through
// cache. Listings change rarely relative to how often bookings read them.
func NewCachedListingRepo(inner ListingRepository, cache *redis.Client) ListingRepository {
	return &cachedListingRepo{inner: inner, cache: cache}
}

func (r *cachedListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	key := listingCachePrefix + id

	if data, err := r.cache.Get(ctx, key).Result(); err == nil {
		var listing models.Listing
		if err := json.Unmarshal([]byte(data), &listing); err == nil {
			return &listing, nil
		}
		// Corrupt entry: fall through to the store and rewrite it.
		r.cache.Del(ctx, key)
	}

	listing, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(listing); err == nil {
		if err := r.cache.Set(ctx, key, data, listingCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache listing", zap.String("id", id), zap.Error(err))
		}
	}
	return listing, nil
}

func (r *cachedListingRepo) ListByVendor(ctx context.Context, vendorID string) ([]*models.Listing, error) {
	// Vendor dashboards tolerate a direct read; only the single-listing
	// lookup sits on the booking hot path.
	return r.inner.ListByVendor(ctx, vendorID)
}

func (r *cachedListingRepo) EnsureIndexes() error {
	return r.inner.EnsureIndexes()
}
