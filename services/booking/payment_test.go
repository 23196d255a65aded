package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripnest/models"
)

func TestPaymentLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("initiate moves unpaid to pending with a reference", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)

		updated, _, err := env.svc.InitiatePayment(ctx, customerActor("cust-1", "asha@example.com"), booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, updated.PaymentStatus)
		assert.True(t, strings.HasPrefix(updated.Metadata["paymentRef"], "pi_"))
	})

	t.Run("initiate twice conflicts", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)
		actor := customerActor("cust-1", "asha@example.com")

		_, _, err := env.svc.InitiatePayment(ctx, actor, booking.ID)
		require.NoError(t, err)

		_, _, err = env.svc.InitiatePayment(ctx, actor, booking.ID)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("initiate on cancelled booking is rejected", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)
		transitionTo(t, env, booking.ID, models.BookingStatusCancelled)

		_, _, err := env.svc.InitiatePayment(ctx, adminActor(), booking.ID)
		var invalid *InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("confirm moves pending to paid", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)
		initiated, _, err := env.svc.InitiatePayment(ctx, adminActor(), booking.ID)
		require.NoError(t, err)

		updated, err := env.svc.ConfirmPayment(ctx, vendorActor("vendor-1"), booking.ID, initiated.Metadata["paymentRef"])
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
	})

	t.Run("confirm with wrong reference is rejected", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)
		_, _, err := env.svc.InitiatePayment(ctx, adminActor(), booking.ID)
		require.NoError(t, err)

		_, err = env.svc.ConfirmPayment(ctx, adminActor(), booking.ID, "pi_someone_elses")
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)
		_, _, err := env.svc.InitiatePayment(ctx, adminActor(), booking.ID)
		require.NoError(t, err)

		_, err = env.svc.ConfirmPayment(ctx, customerActor("cust-1", "asha@example.com"), booking.ID, "")
		var unauthorized *UnauthorizedTransitionError
		require.ErrorAs(t, err, &unauthorized)
	})

	t.Run("confirm before initiate conflicts", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)

		_, err := env.svc.ConfirmPayment(ctx, adminActor(), booking.ID, "")
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("refund is admin only and requires paid", func(t *testing.T) {
		env := newTestEnv()
		booking := createTestBooking(t, env)
		_, _, err := env.svc.InitiatePayment(ctx, adminActor(), booking.ID)
		require.NoError(t, err)
		_, err = env.svc.ConfirmPayment(ctx, adminActor(), booking.ID, "")
		require.NoError(t, err)

		_, err = env.svc.RefundPayment(ctx, vendorActor("vendor-1"), booking.ID)
		var unauthorized *UnauthorizedTransitionError
		require.ErrorAs(t, err, &unauthorized)

		updated, err := env.svc.RefundPayment(ctx, adminActor(), booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusRefunded, updated.PaymentStatus)

		// Refunding twice conflicts.
		_, err = env.svc.RefundPayment(ctx, adminActor(), booking.ID)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})
}
