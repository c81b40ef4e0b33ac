package bookingservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bookingservice.go -destination=mocks.go -package=bookingservice

type BookingRepo interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
	FindAll(ctx context.Context, userEmail string) ([]domain.Booking, error)
	FindByAssignedTo(ctx context.Context, decoratorID string) ([]domain.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpdateAssignment(ctx context.Context, id string, assignedTo *string, bookingStatus string) (bool, error)
	UpdateBookingStatus(ctx context.Context, id string, bookingStatus string) (bool, error)
}

type DecoratorRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Decorator, error)
	AddEarnings(ctx context.Context, id string, amount float64) error
}

type Service struct {
	bookingRepo   BookingRepo
	decoratorRepo DecoratorRepo
}

func New(bookingRepo BookingRepo, decoratorRepo DecoratorRepo) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		decoratorRepo: decoratorRepo,
	}
}

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidAssignee = errors.New("invalid decorator identifier")
)

// UnassignedSentinel is what clients send to clear an assignment.
const UnassignedSentinel = "unassigned"

// ResolvableID reports whether id can address a stored row. Identifiers come
// straight from the URL; a malformed one matches nothing and must not reach
// the uuid codec, where it would fail as an encoding error.
func ResolvableID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Service) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.Status = domain.PaymentStatusPending
	booking.BookingStatus = domain.FulfilmentUnpaid

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		zap.L().Error("can't create booking", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetBookings(ctx context.Context, userEmail string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.FindAll(ctx, userEmail)
	if err != nil {
		zap.L().Error("failed to get bookings", zap.Error(err))
		return nil, err
	}
	for i := range bookings {
		applyReadDefaults(&bookings[i])
	}
	return bookings, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if !ResolvableID(id) {
		return nil, ErrBookingNotFound
	}
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	applyReadDefaults(booking)
	return booking, nil
}

func (s *Service) GetBookingsByDecorator(ctx context.Context, decoratorID string) ([]domain.Booking, error) {
	if !ResolvableID(decoratorID) {
		return nil, nil
	}
	bookings, err := s.bookingRepo.FindByAssignedTo(ctx, decoratorID)
	if err != nil {
		zap.L().Error("failed to get decorator bookings", zap.Error(err))
		return nil, err
	}
	for i := range bookings {
		applyReadDefaults(&bookings[i])
	}
	return bookings, nil
}

// GetBookingBySession resolves a booking by its bound checkout session, for
// clients landing on the success page with only the session reference.
func (s *Service) GetBookingBySession(ctx context.Context, sessionID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get booking by session", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	applyReadDefaults(booking)
	return booking, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	if !ResolvableID(id) {
		return ErrBookingNotFound
	}
	deleted, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete booking", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	return nil
}

// AssignDecorator assigns or clears the fulfilment agent of a booking. The
// assignment write and the earnings accrual are two independent mutations:
// a crash in between leaves the booking assigned with earnings unaccrued,
// which a later recomputation from assigned-booking history can repair.
func (s *Service) AssignDecorator(ctx context.Context, bookingID string, assignedTo string) (bool, error) {
	if !ResolvableID(bookingID) {
		return false, ErrBookingNotFound
	}

	var target *string
	if trimmed := strings.TrimSpace(assignedTo); trimmed != "" && trimmed != UnassignedSentinel {
		if !ResolvableID(trimmed) {
			return false, ErrInvalidAssignee
		}
		target = &trimmed
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return false, err
	}
	if booking == nil {
		return false, ErrBookingNotFound
	}

	bookingStatus := domain.FulfilmentPending
	if target != nil {
		bookingStatus = domain.FulfilmentAssigned
	}

	modified, err := s.bookingRepo.UpdateAssignment(ctx, bookingID, target, bookingStatus)
	if err != nil {
		zap.L().Error("failed to update assignment", zap.Error(err))
		return false, err
	}

	if target != nil {
		s.accrueEarnings(ctx, *target, booking.Price)
	}

	return modified, nil
}

// accrueEarnings adds the booking price to the decorator's lifetime
// earnings. A missing decorator is skipped silently, the assignment itself
// stands.
func (s *Service) accrueEarnings(ctx context.Context, decoratorID string, price float64) {
	decorator, err := s.decoratorRepo.FindByID(ctx, decoratorID)
	if err != nil {
		zap.L().Error("failed to load decorator for earnings accrual", zap.Error(err))
		return
	}
	if decorator == nil {
		zap.L().Info("assignment target decorator not found, skipping earnings accrual", zap.String("decorator_id", decoratorID))
		return
	}

	if err := s.decoratorRepo.AddEarnings(ctx, decoratorID, price); err != nil {
		zap.L().Error("failed to accrue decorator earnings", zap.String("decorator_id", decoratorID), zap.Error(err))
	}
}

func (s *Service) UpdateBookingStatus(ctx context.Context, id string, bookingStatus string) (bool, error) {
	if !ResolvableID(id) {
		return false, nil
	}
	modified, err := s.bookingRepo.UpdateBookingStatus(ctx, id, bookingStatus)
	if err != nil {
		zap.L().Error("failed to update booking status", zap.Error(err))
		return false, err
	}
	return modified, nil
}

// applyReadDefaults fills the status fields for rows written before the
// fields existed: read-time defaults, never written back.
func applyReadDefaults(b *domain.Booking) {
	if b.BookingStatus == "" {
		b.BookingStatus = domain.FulfilmentPending
	}
	if b.Status == "" {
		b.Status = domain.PaymentStatusPending
	}
}
