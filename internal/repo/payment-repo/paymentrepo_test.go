package paymentrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/pg"
)

var paymentCols = []string{
	"id", "amount", "currency", "customer_email", "parcel_id", "parcel_name",
	"transaction_id", "payment_status", "tracking_id", "paid_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func testPayment() *domain.Payment {
	return &domain.Payment{
		Amount:        49.99,
		Currency:      "usd",
		CustomerEmail: "alice@example.com",
		ParcelID:      "p1",
		ParcelName:    "Wedding Arch",
		TransactionID: "pi_123",
		PaymentStatus: "paid",
		TrackingID:    "TRK1700000000000-aaaaaaaa",
		PaidAt:        time.Now(),
	}
}

func TestRepository_Insert(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		execErr      error
		wantInserted bool
		wantErr      bool
	}{
		{
			name:         "First writer wins",
			rowsAffected: 1,
			wantInserted: true,
		},
		{
			name:         "Duplicate transaction id is skipped",
			rowsAffected: 0,
			wantInserted: false,
		},
		{
			name:    "Database error",
			execErr: errors.New("insert failed"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, txManager := NewMock(t)

			txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				})

			payment := testPayment()
			expect := mock.ExpectExec("INSERT INTO payments").
				WithArgs(payment.Amount, payment.Currency, payment.CustomerEmail, payment.ParcelID,
					payment.ParcelName, payment.TransactionID, payment.PaymentStatus, payment.TrackingID, payment.PaidAt)
			if tt.execErr != nil {
				expect.WillReturnError(tt.execErr)
			} else {
				expect.WillReturnResult(pgxmock.NewResult("INSERT", tt.rowsAffected))
			}

			inserted, err := repo.Insert(context.Background(), payment)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByTransactionID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	rows := pgxmock.NewRows(paymentCols).
		AddRow("pay1", 49.99, "usd", "alice@example.com", "p1", "Wedding Arch",
			"pi_123", "paid", "TRK1700000000000-aaaaaaaa", time.Now())
	mock.ExpectQuery("FROM payments").WithArgs("pi_123").WillReturnRows(rows)

	payment, err := repo.FindByTransactionID(context.Background(), "pi_123")
	assert.NoError(t, err)
	assert.Equal(t, "pay1", payment.ID)
	assert.Equal(t, 49.99, payment.Amount)

	mock.ExpectQuery("FROM payments").WithArgs("pi_gone").WillReturnError(pgx.ErrNoRows)
	payment, err = repo.FindByTransactionID(context.Background(), "pi_gone")
	assert.NoError(t, err)
	assert.Nil(t, payment)
}

func TestRepository_FindByCustomerEmail(t *testing.T) {
	repo, mock, _ := NewMock(t)

	rows := pgxmock.NewRows(paymentCols).
		AddRow("pay1", 49.99, "usd", "alice@example.com", "p1", "Wedding Arch",
			"pi_123", "paid", "TRK1", time.Now()).
		AddRow("pay2", 20.0, "usd", "alice@example.com", "p2", "Balloons",
			"pi_456", "paid", "TRK2", time.Now())
	mock.ExpectQuery("FROM payments").WithArgs("alice@example.com").WillReturnRows(rows)

	payments, err := repo.FindByCustomerEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Len(t, payments, 2)

	mock.ExpectQuery("FROM payments").WithArgs("bob@example.com").WillReturnError(errors.New("db down"))
	_, err = repo.FindByCustomerEmail(context.Background(), "bob@example.com")
	assert.Error(t, err)
}
