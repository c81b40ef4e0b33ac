package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/gateway/checkout"
	"github.com/sakibulla/AS-11-Server/internal/service/bookingservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mocks.go -package=paymentservice

type BookingRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	BindSession(ctx context.Context, id string, sessionID string) error
	MarkPaidByID(ctx context.Context, id string) (bool, error)
	MarkPaidBySession(ctx context.Context, sessionID string) (int64, error)
}

type PaymentRepo interface {
	Insert(ctx context.Context, payment *domain.Payment) (bool, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	FindByCustomerEmail(ctx context.Context, customerEmail string) ([]domain.Payment, error)
}

type Gateway interface {
	CreateSession(ctx context.Context, params checkout.CreateSessionParams) (*checkout.Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*checkout.Session, error)
	ConstructEvent(payload []byte, sigHeader string) (*checkout.Event, error)
}

type Service struct {
	bookingRepo BookingRepo
	paymentRepo PaymentRepo
	gateway     Gateway
	siteDomain  string
}

func New(bookingRepo BookingRepo, paymentRepo PaymentRepo, gateway Gateway, siteDomain string) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		siteDomain:  siteDomain,
	}
}

var (
	ErrPaymentIncomplete = errors.New("payment not completed")
	ErrSessionNotBound   = errors.New("checkout session created but not bound to booking")
)

const trackingPrefix = "TRK"

// newTrackingID widens the millisecond token with a random suffix so that
// two confirmations landing in the same millisecond cannot collide.
func newTrackingID(now time.Time) string {
	return trackingPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString()[:8]
}

type ConfirmResult struct {
	Modified      bool
	TrackingID    string
	TransactionID string
	Payment       *domain.Payment
}

// CreateCheckoutSession creates a gateway session for the booking and binds
// the returned session id. The two steps are not atomic: a bind failure
// after a successful gateway call is surfaced as ErrSessionNotBound and is
// repaired by recreating the session.
func (s *Service) CreateCheckoutSession(ctx context.Context, bookingID string, cost float64, parcelName, parcelID, senderEmail string) (string, error) {
	if !bookingservice.ResolvableID(bookingID) {
		return "", bookingservice.ErrBookingNotFound
	}
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if booking == nil {
		return "", bookingservice.ErrBookingNotFound
	}

	amount := int64(math.Round(cost * 100))
	session, err := s.gateway.CreateSession(ctx, checkout.CreateSessionParams{
		AmountCents:   amount,
		Currency:      "usd",
		ProductName:   parcelName,
		CustomerEmail: senderEmail,
		SuccessURL:    s.siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.siteDomain + "/dashboard/payment-cancelled",
		Metadata: map[string]string{
			"bookingId":  bookingID,
			"parcelName": parcelName,
			"parcelId":   parcelID,
		},
	})
	if err != nil {
		zap.L().Error("can't create checkout session", zap.String("booking_id", bookingID), zap.Error(err))
		return "", err
	}

	if err := s.bookingRepo.BindSession(ctx, bookingID, session.ID); err != nil {
		zap.L().Error("session created but not bound", zap.String("booking_id", bookingID), zap.String("session_id", session.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrSessionNotBound, err)
	}

	return session.URL, nil
}

// ConfirmPayment is the client-side confirmation path. It fetches ground
// truth from the gateway, so redundant or malicious invocations are
// self-verifying.
func (s *Service) ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.PaymentStatus != checkout.SessionPaid {
		return nil, ErrPaymentIncomplete
	}

	bookingID := session.Metadata["bookingId"]
	modified, err := s.bookingRepo.MarkPaidByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payment, err := s.recordPayment(ctx, session)
	if err != nil {
		return nil, err
	}

	return &ConfirmResult{
		Modified:      modified,
		TrackingID:    payment.TrackingID,
		TransactionID: session.PaymentIntent,
		Payment:       payment,
	}, nil
}

// HandleWebhook is the provider-side confirmation path. Both paths converge
// on the same paid transition, so whichever fires first wins and the other
// becomes a no-op. The returned flag reports whether a booking actually
// transitioned; ignored event types and unmatched sessions are acknowledged
// without one.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) (bool, error) {
	event, err := s.gateway.ConstructEvent(payload, sigHeader)
	if err != nil {
		return false, err
	}

	if event.Type != checkout.EventCheckoutCompleted {
		zap.L().Debug("ignoring webhook event", zap.String("type", event.Type))
		return false, nil
	}

	session, err := event.Session()
	if err != nil {
		return false, err
	}

	matched, err := s.bookingRepo.MarkPaidBySession(ctx, session.ID)
	if err != nil {
		return false, err
	}
	if matched == 0 {
		// No booking carries this session: acknowledged, nothing to update.
		zap.L().Warn("webhook session matched no booking", zap.String("session_id", session.ID))
		return false, nil
	}

	if session.PaymentIntent != "" {
		if _, err := s.recordPayment(ctx, session); err != nil {
			return true, err
		}
	}

	zap.L().Info("booking marked paid via webhook", zap.String("session_id", session.ID))
	return true, nil
}

// recordPayment writes the payment record exactly once per provider
// transaction id and returns the stored record either way.
func (s *Service) recordPayment(ctx context.Context, session *checkout.Session) (*domain.Payment, error) {
	payment := &domain.Payment{
		Amount:        float64(session.AmountTotal) / 100,
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		ParcelID:      session.Metadata["parcelId"],
		ParcelName:    session.Metadata["parcelName"],
		TransactionID: session.PaymentIntent,
		PaymentStatus: session.PaymentStatus,
		TrackingID:    newTrackingID(time.Now()),
		PaidAt:        time.Now(),
	}

	inserted, err := s.paymentRepo.Insert(ctx, payment)
	if err != nil {
		zap.L().Error("can't record payment", zap.String("transaction_id", payment.TransactionID), zap.Error(err))
		return nil, err
	}
	if inserted {
		return payment, nil
	}

	existing, err := s.paymentRepo.FindByTransactionID(ctx, payment.TransactionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// Lost the insert race and the winner's row is not visible yet;
		// report what this confirmation observed.
		return payment, nil
	}
	return existing, nil
}

func (s *Service) GetPayments(ctx context.Context, customerEmail string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByCustomerEmail(ctx, customerEmail)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
