package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"

	"tripnest/config"
	bookingRepo "tripnest/database/repository/booking"
	"tripnest/models"
	"tripnest/utils"
)

// InitiatePayment opens a Stripe payment for an unpaid booking and moves its
// payment status to pending. Returns the updated booking and the client
// secret the frontend needs to complete the charge. Without a configured
// Stripe key (local development) a simulated reference is recorded instead.
func (s *DefaultBookingService) InitiatePayment(ctx context.Context, actor *utils.Actor, id string) (*models.Booking, string, error) {
	booking, err := s.GetBooking(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}
	if booking.IsTerminal() {
		return nil, "", &InvalidTransitionError{From: booking.Status, To: "payment"}
	}
	if booking.PaymentStatus != models.PaymentStatusUnpaid {
		return nil, "", &ConflictError{Message: "payment already " + booking.PaymentStatus}
	}

	paymentRef, clientSecret, err := s.createPaymentIntent(booking)
	if err != nil {
		return nil, "", err
	}

	updated, err := s.BookingRepo.TransitionPayment(ctx, id, models.PaymentStatusUnpaid, models.PaymentStatusPending, booking.Version, paymentRef)
	if err != nil {
		if err == bookingRepo.ErrStaleBooking {
			return nil, "", &ConflictError{Message: "booking was updated concurrently, retry"}
		}
		return nil, "", &PersistenceError{Op: "update payment status", Err: err}
	}

	utils.GetLogger().Info("payment initiated",
		zap.String("bookingId", id), zap.String("paymentRef", paymentRef))
	return updated, clientSecret, nil
}

func (s *DefaultBookingService) createPaymentIntent(booking *models.Booking) (ref, clientSecret string, err error) {
	if config.AppConfig.StripeKey == "" {
		return "pi_" + uuid.New().String(), "", nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(booking.TotalAmount),
		Currency: stripe.String(strings.ToLower(booking.Currency)),
	}
	params.AddMetadata("bookingId", booking.ID)
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", &PersistenceError{Op: "create payment intent", Err: err}
	}
	return pi.ID, pi.ClientSecret, nil
}

// ConfirmPayment marks a pending payment as paid. Called by the payment
// webhook or by the owning vendor/admin on out-of-band payment.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, actor *utils.Actor, id, paymentRef string) (*models.Booking, error) {
	if actor == nil || (actor.Role != utils.RoleAdmin && actor.Role != utils.RoleVendor) {
		return nil, &UnauthorizedTransitionError{Message: "only vendors and admins may confirm payments"}
	}

	booking, err := s.GetBooking(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != models.PaymentStatusPending {
		return nil, &ConflictError{Message: "payment is " + booking.PaymentStatus + ", not pending"}
	}
	if paymentRef != "" && booking.Metadata["paymentRef"] != paymentRef {
		return nil, &ValidationError{Message: "payment reference does not match this booking"}
	}

	updated, err := s.BookingRepo.TransitionPayment(ctx, id, models.PaymentStatusPending, models.PaymentStatusPaid, booking.Version, "")
	if err != nil {
		if err == bookingRepo.ErrStaleBooking {
			return nil, &ConflictError{Message: "booking was updated concurrently, retry"}
		}
		return nil, &PersistenceError{Op: "update payment status", Err: err}
	}

	utils.GetLogger().Info("payment confirmed", zap.String("bookingId", id))
	return updated, nil
}

// RefundPayment refunds a paid booking. Admin only; the Stripe refund is
// issued against the stored payment reference when a key is configured.
func (s *DefaultBookingService) RefundPayment(ctx context.Context, actor *utils.Actor, id string) (*models.Booking, error) {
	if actor == nil || actor.Role != utils.RoleAdmin {
		return nil, &UnauthorizedTransitionError{Message: "only admins may refund payments"}
	}

	booking, err := s.GetBooking(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != models.PaymentStatusPaid {
		return nil, &ConflictError{Message: "payment is " + booking.PaymentStatus + ", not paid"}
	}

	if ref := booking.Metadata["paymentRef"]; config.AppConfig.StripeKey != "" && strings.HasPrefix(ref, "pi_") {
		if _, err := refund.New(&stripe.RefundParams{PaymentIntent: stripe.String(ref)}); err != nil {
			return nil, &PersistenceError{Op: "issue stripe refund", Err: err}
		}
	}

	updated, err := s.BookingRepo.TransitionPayment(ctx, id, models.PaymentStatusPaid, models.PaymentStatusRefunded, booking.Version, "")
	if err != nil {
		if err == bookingRepo.ErrStaleBooking {
			return nil, &ConflictError{Message: "booking was updated concurrently, retry"}
		}
		return nil, &PersistenceError{Op: "update payment status", Err: err}
	}

	utils.GetLogger().Info("payment refunded", zap.String("bookingId", id))
	return updated, nil
}
