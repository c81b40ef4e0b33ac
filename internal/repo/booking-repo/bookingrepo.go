package bookingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/pg"
	"go.uber.org/zap"
)

const bookingColumns = `
        id, user_name, user_email, service_id, service_name, booking_date, location,
        price, COALESCE(status, ''), COALESCE(booking_status, ''), assigned_to, session_id, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.UserName, &b.UserEmail, &b.ServiceID, &b.ServiceName, &b.BookingDate,
		&b.Location, &b.Price, &b.Status, &b.BookingStatus, &b.AssignedTo, &b.SessionID, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query := `
        INSERT INTO bookings (user_name, user_email, service_id, service_name, booking_date, location, price, status, booking_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		booking.UserName, booking.UserEmail, booking.ServiceID, booking.ServiceName,
		booking.BookingDate, booking.Location, booking.Price, booking.Status, booking.BookingStatus,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE id = $1
    `
	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (r *Repository) FindBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE session_id = $1
    `
	booking, err := scanBooking(r.db.QueryRow(ctx, query, sessionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking by session", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (r *Repository) FindAll(ctx context.Context, userEmail string) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE ($1 = '' OR user_email = $1)
        ORDER BY created_at DESC
    `
	return r.queryBookings(ctx, query, userEmail)
}

func (r *Repository) FindByAssignedTo(ctx context.Context, decoratorID string) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE assigned_to = $1
        ORDER BY created_at DESC
    `
	return r.queryBookings(ctx, query, decoratorID)
}

// FindUnconfirmedSessions returns bookings that have a checkout session bound
// but are still unconfirmed, for the reconciliation sweep.
func (r *Repository) FindUnconfirmedSessions(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE session_id IS NOT NULL
          AND COALESCE(status, 'pending') = 'pending'
          AND created_at < now() - $1::interval
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.queryBookings(ctx, query, olderThan.String(), int(limit))
}

func (r *Repository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete booking", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// BindSession stores the checkout session reference on the booking. The
// session id is overwritable: recreating a session rebinds the booking.
func (r *Repository) BindSession(ctx context.Context, id string, sessionID string) error {
	query := `
        UPDATE bookings
        SET session_id = $1, status = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, sessionID, domain.PaymentStatusPending, id)
	if err != nil {
		zap.L().Error("can't bind session to booking", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MarkPaidByID is the unified paid transition: unconditional set, naturally
// idempotent on redelivery.
func (r *Repository) MarkPaidByID(ctx context.Context, id string) (bool, error) {
	query := `
        UPDATE bookings
        SET status = $1, booking_status = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.PaymentStatusPaid, domain.FulfilmentPending, id)
	if err != nil {
		zap.L().Error("can't mark booking paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkPaidBySession is the webhook-side variant: the event carries only the
// session reference. Matching zero rows is not an error.
func (r *Repository) MarkPaidBySession(ctx context.Context, sessionID string) (int64, error) {
	query := `
        UPDATE bookings
        SET status = $1, booking_status = $2
        WHERE session_id = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.PaymentStatusPaid, domain.FulfilmentPending, sessionID)
	if err != nil {
		zap.L().Error("can't mark booking paid by session", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UpdateAssignment(ctx context.Context, id string, assignedTo *string, bookingStatus string) (bool, error) {
	query := `
        UPDATE bookings
        SET assigned_to = $1, booking_status = $2
        WHERE id = $3
    `
	var modified bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, assignedTo, bookingStatus, id)
		if err != nil {
			zap.L().Error("can't update booking assignment", zap.Error(err))
			return err
		}
		modified = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return modified, nil
}

func (r *Repository) UpdateBookingStatus(ctx context.Context, id string, bookingStatus string) (bool, error) {
	query := `
        UPDATE bookings
        SET booking_status = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, bookingStatus, id)
	if err != nil {
		zap.L().Error("can't update booking status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
