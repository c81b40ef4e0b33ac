package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/sakibulla/AS-11-Server/internal/config"
	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/service/paymentservice"
)

func NewMock(t *testing.T) (*Service, *MockBookingRepo, *MockConfirmer, *MockWorkerPoolI) {
	cfg := &config.Config{ReconcileInterval: time.Second}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingRepo := NewMockBookingRepo(ctrl)
	confirmer := NewMockConfirmer(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	service := New(cfg, bookingRepo, confirmer)
	service.workerPool = workerPool
	return service, bookingRepo, confirmer, workerPool
}

func sessionPtr(s string) *string { return &s }

func TestService_Start(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processSessions(t *testing.T) {
	runTask := func(ctx context.Context, task Task) error { return task() }

	tests := []struct {
		name     string
		bookings []domain.Booking
		findErr  error
		setup    func(confirmer *MockConfirmer, workerPool *MockWorkerPoolI)
	}{
		{
			name: "confirms every stale session",
			bookings: []domain.Booking{
				{ID: "b1", SessionID: sessionPtr("cs_1")},
				{ID: "b2", SessionID: sessionPtr("cs_2")},
			},
			setup: func(confirmer *MockConfirmer, workerPool *MockWorkerPoolI) {
				workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runTask).Times(2)
				confirmer.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").Return(&paymentservice.ConfirmResult{Modified: true}, nil)
				confirmer.EXPECT().ConfirmPayment(gomock.Any(), "cs_2").Return(&paymentservice.ConfirmResult{Modified: true}, nil)
			},
		},
		{
			name:    "fetch failure aborts the sweep",
			findErr: errors.New("db down"),
			setup:   func(confirmer *MockConfirmer, workerPool *MockWorkerPoolI) {},
		},
		{
			name: "unpaid session is left for the next sweep",
			bookings: []domain.Booking{
				{ID: "b3", SessionID: sessionPtr("cs_3")},
			},
			setup: func(confirmer *MockConfirmer, workerPool *MockWorkerPoolI) {
				workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runTask)
				confirmer.EXPECT().ConfirmPayment(gomock.Any(), "cs_3").Return(nil, paymentservice.ErrPaymentIncomplete)
			},
		},
		{
			name: "booking without session id is skipped",
			bookings: []domain.Booking{
				{ID: "b4"},
			},
			setup: func(confirmer *MockConfirmer, workerPool *MockWorkerPoolI) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, bookingRepo, confirmer, workerPool := NewMock(t)

			bookingRepo.EXPECT().
				FindUnconfirmedSessions(gomock.Any(), minSessionAge, service.limit).
				Return(tt.bookings, tt.findErr)
			tt.setup(confirmer, workerPool)

			service.processSessions(context.Background())
		})
	}
}

func TestService_processSessions_DedupInFlight(t *testing.T) {
	service, bookingRepo, _, _ := NewMock(t)

	processingSessions.Store("cs_busy", struct{}{})
	defer processingSessions.Delete("cs_busy")

	bookingRepo.EXPECT().
		FindUnconfirmedSessions(gomock.Any(), minSessionAge, service.limit).
		Return([]domain.Booking{{ID: "b5", SessionID: sessionPtr("cs_busy")}}, nil)

	// No AddTask expectation: the in-flight session must not be re-enqueued.
	service.processSessions(context.Background())
}

func TestService_handleSession(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "paid session settles", err: nil, wantErr: false},
		{name: "incomplete payment is not an error", err: paymentservice.ErrPaymentIncomplete, wantErr: false},
		{name: "unexpected failure propagates", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, confirmer, _ := NewMock(t)

			confirmer.EXPECT().ConfirmPayment(gomock.Any(), "cs_9").Return(nil, tt.err)

			err := service.handleSession(context.Background(), "b9", "cs_9")
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
