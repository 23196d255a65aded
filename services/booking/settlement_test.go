package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/models"
)

type recordingEnqueuer struct {
	enqueued []*models.Settlement
	fail     bool
}

func (e *recordingEnqueuer) EnqueueSettlementDue(s *models.Settlement) error {
	if e.fail {
		return errors.New("queue unreachable")
	}
	e.enqueued = append(e.enqueued, s)
	return nil
}

func TestSettlementLinkage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	enqueuer := &recordingEnqueuer{}
	env.svc.Enqueuer = enqueuer

	created, err := env.svc.CreateBooking(ctx, validInput(), nil)
	require.NoError(t, err)

	settlement, err := env.svc.GetSettlementForBooking(ctx, adminActor(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, settlement.BookingID)
	assert.Equal(t, created.StayID, settlement.StayID)
	assert.Equal(t, created.VendorID, settlement.VendorID)
	assert.Equal(t, created.TotalAmount, settlement.AmountDue)
	assert.Equal(t, created.Currency, settlement.Currency)
	assert.Equal(t, created.CheckOut.Add(7*24*time.Hour), settlement.ScheduledDate)

	require.Len(t, enqueuer.enqueued, 1)
	assert.Equal(t, settlement.ID, enqueuer.enqueued[0].ID)
}

func TestSettlementEnqueueFailureDoesNotFailBooking(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.svc.Enqueuer = &recordingEnqueuer{fail: true}

	created, err := env.svc.CreateBooking(ctx, validInput(), nil)
	require.NoError(t, err)

	// The settlement is stored regardless; the worker sweep recovers the
	// lost task.
	_, err = env.svc.GetSettlementForBooking(ctx, adminActor(), created.ID)
	assert.NoError(t, err)
}

func TestSettlementScoping(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, err := env.svc.CreateBooking(ctx, validInput(), nil)
	require.NoError(t, err)

	t.Run("owning vendor reads", func(t *testing.T) {
		settlement, err := env.svc.GetSettlementForBooking(ctx, vendorActor("vendor-1"), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.TotalAmount, settlement.AmountDue)

		list, err := env.svc.ListSettlements(ctx, vendorActor("vendor-1"), settlementRepo.SettlementListFilter{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("foreign vendor sees nothing", func(t *testing.T) {
		var notFound *NotFoundError
		_, err := env.svc.GetSettlementForBooking(ctx, vendorActor("vendor-2"), created.ID)
		require.ErrorAs(t, err, &notFound)

		list, err := env.svc.ListSettlements(ctx, vendorActor("vendor-2"), settlementRepo.SettlementListFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("customer has no settlement surface", func(t *testing.T) {
		var unauthorized *UnauthorizedTransitionError
		_, err := env.svc.ListSettlements(ctx, customerActor("cust-1", "asha@example.com"), settlementRepo.SettlementListFilter{})
		require.ErrorAs(t, err, &unauthorized)
	})

	t.Run("status filter applies", func(t *testing.T) {
		list, err := env.svc.ListSettlements(ctx, adminActor(), settlementRepo.SettlementListFilter{Status: models.SettlementStatusPending})
		require.NoError(t, err)
		assert.Len(t, list, 1)

		list, err = env.svc.ListSettlements(ctx, adminActor(), settlementRepo.SettlementListFilter{Status: models.SettlementStatusDue})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
