package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sakibulla/AS-11-Server/internal/config"
	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/gateway/checkout"
	"github.com/sakibulla/AS-11-Server/internal/service/paymentservice"
)

//go:generate mockgen -source=reconciler.go -destination=mocks.go -package=reconciler

// minSessionAge keeps freshly created sessions out of the sweep so the
// reconciler never races a checkout the customer is still completing.
const minSessionAge = 10 * time.Minute

type BookingRepo interface {
	FindUnconfirmedSessions(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.Booking, error)
}

type Confirmer interface {
	ConfirmPayment(ctx context.Context, sessionID string) (*paymentservice.ConfirmResult, error)
}

// Service periodically sweeps bookings that hold a checkout session but were
// never confirmed by either the client callback or the webhook, and settles
// them against gateway ground truth.
type Service struct {
	bookingRepo    BookingRepo
	confirmer      Confirmer
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

var processingSessions sync.Map

func New(cfg *config.Config, bookingRepo BookingRepo, confirmer Confirmer) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		confirmer:      confirmer,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment reconciler started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processSessions(ctx)
		}
	}
}

func (s *Service) processSessions(ctx context.Context) {
	bookings, err := s.bookingRepo.FindUnconfirmedSessions(ctx, minSessionAge, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch unconfirmed sessions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, booking := range bookings {
		booking := booking
		if booking.SessionID == nil {
			continue
		}
		sessionID := *booking.SessionID

		if _, loaded := processingSessions.LoadOrStore(sessionID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingSessions.Delete(sessionID)
				return s.handleSession(ctx, booking.ID, sessionID)
			})
			if err != nil {
				processingSessions.Delete(sessionID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling sessions", zap.Error(err))
	}
}

// handleSession funnels a stale session through the same confirmation path
// the client callback uses, so a paid session settles identically no matter
// who reports it first.
func (s *Service) handleSession(ctx context.Context, bookingID, sessionID string) error {
	_, err := s.confirmer.ConfirmPayment(ctx, sessionID)
	switch {
	case err == nil:
		zap.L().Info("Reconciled unconfirmed payment",
			zap.String("booking_id", bookingID),
			zap.String("session_id", sessionID),
		)
		return nil
	case errors.Is(err, paymentservice.ErrPaymentIncomplete):
		// Session still open or abandoned; the next sweep will look again.
		return nil
	case errors.Is(err, checkout.ErrUpstreamGateway):
		zap.L().Warn("Gateway unavailable during reconciliation", zap.String("session_id", sessionID), zap.Error(err))
		return nil
	default:
		return err
	}
}
