package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/pg"
	"go.uber.org/zap"
)

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

// Insert writes the payment record at most once per provider transaction id.
// The unique constraint on transaction_id makes concurrent confirmation
// paths resolve to a single winner; the loser sees inserted=false, which is
// "already recorded", not an error.
func (r *Repository) Insert(ctx context.Context, payment *domain.Payment) (bool, error) {
	query := `
        INSERT INTO payments (amount, currency, customer_email, parcel_id, parcel_name, transaction_id, payment_status, tracking_id, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (transaction_id) DO NOTHING
    `
	var inserted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			payment.Amount, payment.Currency, payment.CustomerEmail, payment.ParcelID,
			payment.ParcelName, payment.TransactionID, payment.PaymentStatus, payment.TrackingID, payment.PaidAt,
		)
		if err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		inserted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *Repository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	query := `
        SELECT id, amount, currency, customer_email, parcel_id, parcel_name, transaction_id, payment_status, tracking_id, paid_at
        FROM payments
        WHERE transaction_id = $1
    `
	var p domain.Payment
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&p.ID, &p.Amount, &p.Currency, &p.CustomerEmail, &p.ParcelID, &p.ParcelName,
		&p.TransactionID, &p.PaymentStatus, &p.TrackingID, &p.PaidAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByCustomerEmail(ctx context.Context, customerEmail string) ([]domain.Payment, error) {
	query := `
        SELECT id, amount, currency, customer_email, parcel_id, parcel_name, transaction_id, payment_status, tracking_id, paid_at
        FROM payments
        WHERE customer_email = $1
        ORDER BY paid_at DESC
    `
	rows, err := r.db.Query(ctx, query, customerEmail)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID, &p.Amount, &p.Currency, &p.CustomerEmail, &p.ParcelID, &p.ParcelName,
			&p.TransactionID, &p.PaymentStatus, &p.TrackingID, &p.PaidAt,
		)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
