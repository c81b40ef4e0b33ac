package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/gateway/checkout"
	"github.com/sakibulla/AS-11-Server/internal/service/bookingservice"
)

const (
	testSiteDomain = "https://decora.example.com"
	testBookingID  = "0b564be7-60c4-4a35-9d11-8d0c3c2d4b01"
)

func NewMock(t *testing.T) (*Service, *MockBookingRepo, *MockPaymentRepo, *MockGateway) {
	ctrl := gomock.NewController(t)
	bookingRepo := NewMockBookingRepo(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	gateway := NewMockGateway(ctrl)
	service := New(bookingRepo, paymentRepo, gateway, testSiteDomain)
	defer ctrl.Finish()
	return service, bookingRepo, paymentRepo, gateway
}

func paidSession(id string) *checkout.Session {
	return &checkout.Session{
		ID:            id,
		PaymentStatus: checkout.SessionPaid,
		PaymentIntent: "pi_123",
		AmountTotal:   4999,
		Currency:      "usd",
		CustomerEmail: "alice@example.com",
		Metadata: map[string]string{
			"bookingId":  testBookingID,
			"parcelName": "Wedding Arch",
			"parcelId":   "p1",
		},
	}
}

func timeNowFixed() time.Time { return time.UnixMilli(1700000000000) }

func TestNewTrackingID(t *testing.T) {
	id1 := newTrackingID(timeNowFixed())
	id2 := newTrackingID(timeNowFixed())

	assert.True(t, strings.HasPrefix(id1, "TRK"))
	// Same millisecond, still distinct thanks to the random suffix.
	assert.NotEqual(t, id1, id2)
}

func TestCreateCheckoutSession(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(bookingRepo *MockBookingRepo, gateway *MockGateway)
		expectedURL   string
		expectedError error
	}{
		{
			name: "Cost is converted to cents and session bound",
			prepareMock: func(bookingRepo *MockBookingRepo, gateway *MockGateway) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID}, nil)
				gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, params checkout.CreateSessionParams) (*checkout.Session, error) {
						assert.Equal(t, int64(4999), params.AmountCents)
						assert.Equal(t, "usd", params.Currency)
						assert.Equal(t, testBookingID, params.Metadata["bookingId"])
						assert.Equal(t, testSiteDomain+"/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}", params.SuccessURL)
						return &checkout.Session{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
					})
				bookingRepo.EXPECT().BindSession(gomock.Any(), testBookingID, "cs_1").Return(nil)
			},
			expectedURL: "https://pay.example.com/cs_1",
		},
		{
			name: "Missing booking",
			prepareMock: func(bookingRepo *MockBookingRepo, gateway *MockGateway) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(nil, nil)
			},
			expectedError: bookingservice.ErrBookingNotFound,
		},
		{
			name: "Gateway failure",
			prepareMock: func(bookingRepo *MockBookingRepo, gateway *MockGateway) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID}, nil)
				gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, checkout.ErrUpstreamGateway)
			},
			expectedError: checkout.ErrUpstreamGateway,
		},
		{
			name: "Bind failure after session creation",
			prepareMock: func(bookingRepo *MockBookingRepo, gateway *MockGateway) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID}, nil)
				gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(&checkout.Session{ID: "cs_1", URL: "u"}, nil)
				bookingRepo.EXPECT().BindSession(gomock.Any(), testBookingID, "cs_1").Return(errors.New("db down"))
			},
			expectedError: ErrSessionNotBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, bookingRepo, _, gateway := NewMock(t)
			tt.prepareMock(bookingRepo, gateway)

			url, err := service.CreateCheckoutSession(context.Background(), testBookingID, 49.99, "Wedding Arch", "p1", "alice@example.com")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedURL, url)
		})
	}
}

func TestCreateCheckoutSession_MalformedID(t *testing.T) {
	service, _, _, _ := NewMock(t)

	// A malformed identifier never reaches the repository or the gateway.
	_, err := service.CreateCheckoutSession(context.Background(), "abc", 49.99, "Wedding Arch", "p1", "alice@example.com")
	assert.ErrorIs(t, err, bookingservice.ErrBookingNotFound)
}

func TestConfirmPayment(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway)
		expectedMod   bool
		expectedError error
	}{
		{
			name: "First confirmation marks paid and records payment",
			prepareMock: func(bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession("cs_1"), nil)
				bookingRepo.EXPECT().MarkPaidByID(gomock.Any(), testBookingID).Return(true, nil)
				paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedMod: true,
		},
		{
			name: "Redundant confirmation reports existing record",
			prepareMock: func(bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(paidSession("cs_1"), nil)
				bookingRepo.EXPECT().MarkPaidByID(gomock.Any(), testBookingID).Return(false, nil)
				paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)
				paymentRepo.EXPECT().FindByTransactionID(gomock.Any(), "pi_123").Return(&domain.Payment{
					TransactionID: "pi_123",
					TrackingID:    "TRK100-aaaa",
				}, nil)
			},
			expectedMod: false,
		},
		{
			name: "Unpaid session is rejected without mutation",
			prepareMock: func(bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				s := paidSession("cs_1")
				s.PaymentStatus = "unpaid"
				gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(s, nil)
			},
			expectedError: ErrPaymentIncomplete,
		},
		{
			name: "Gateway unavailable",
			prepareMock: func(bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				gateway.EXPECT().RetrieveSession(gomock.Any(), "cs_1").Return(nil, checkout.ErrUpstreamGateway)
			},
			expectedError: checkout.ErrUpstreamGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, bookingRepo, paymentRepo, gateway := NewMock(t)
			tt.prepareMock(bookingRepo, paymentRepo, gateway)

			result, err := service.ConfirmPayment(context.Background(), "cs_1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMod, result.Modified)
			assert.Equal(t, "pi_123", result.TransactionID)
			assert.NotEmpty(t, result.TrackingID)
		})
	}
}

func TestHandleWebhook(t *testing.T) {
	completedEvent := func(t *testing.T, session *checkout.Session) []byte {
		t.Helper()
		object, err := json.Marshal(session)
		require.NoError(t, err)
		payload, err := json.Marshal(map[string]any{
			"id":   "evt_1",
			"type": checkout.EventCheckoutCompleted,
			"data": map[string]any{"object": json.RawMessage(object)},
		})
		require.NoError(t, err)
		return payload
	}

	tests := []struct {
		name               string
		payload            func(t *testing.T) []byte
		prepareMock        func(t *testing.T, bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway)
		expectedTransition bool
		expectedError      error
	}{
		{
			name:    "Completed session marks booking paid",
			payload: func(t *testing.T) []byte { return completedEvent(t, paidSession("cs_1")) },
			prepareMock: func(t *testing.T, bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				gateway.EXPECT().ConstructEvent(gomock.Any(), "sig").DoAndReturn(
					func(payload []byte, _ string) (*checkout.Event, error) {
						var event checkout.Event
						require.NoError(t, json.Unmarshal(payload, &event))
						return &event, nil
					})
				bookingRepo.EXPECT().MarkPaidBySession(gomock.Any(), "cs_1").Return(int64(1), nil)
				paymentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (bool, error) {
						assert.Equal(t, 49.99, p.Amount)
						assert.Equal(t, "pi_123", p.TransactionID)
						return true, nil
					})
			},
			expectedTransition: true,
		},
		{
			name:    "Invalid signature stops processing",
			payload: func(t *testing.T) []byte { return []byte("{}") },
			prepareMock: func(t *testing.T, bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				gateway.EXPECT().ConstructEvent(gomock.Any(), "sig").Return(nil, checkout.ErrSignatureVerification)
			},
			expectedError: checkout.ErrSignatureVerification,
		},
		{
			name:    "Unknown session is acknowledged without error",
			payload: func(t *testing.T) []byte { return completedEvent(t, paidSession("cs_gone")) },
			prepareMock: func(t *testing.T, bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				gateway.EXPECT().ConstructEvent(gomock.Any(), "sig").DoAndReturn(
					func(payload []byte, _ string) (*checkout.Event, error) {
						var event checkout.Event
						require.NoError(t, json.Unmarshal(payload, &event))
						return &event, nil
					})
				bookingRepo.EXPECT().MarkPaidBySession(gomock.Any(), "cs_gone").Return(int64(0), nil)
			},
		},
		{
			name:    "Other event types are ignored",
			payload: func(t *testing.T) []byte { return []byte(`{"id":"evt_2","type":"invoice.created"}`) },
			prepareMock: func(t *testing.T, bookingRepo *MockBookingRepo, paymentRepo *MockPaymentRepo, gateway *MockGateway) {
				gateway.EXPECT().ConstructEvent(gomock.Any(), "sig").Return(&checkout.Event{ID: "evt_2", Type: "invoice.created"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, bookingRepo, paymentRepo, gateway := NewMock(t)
			tt.prepareMock(t, bookingRepo, paymentRepo, gateway)

			transitioned, err := service.HandleWebhook(context.Background(), tt.payload(t), "sig")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			// Acknowledged events that moved no booking are not confirmations.
			assert.Equal(t, tt.expectedTransition, transitioned)
		})
	}
}

func TestGetPayments(t *testing.T) {
	service, _, paymentRepo, _ := NewMock(t)

	paymentRepo.EXPECT().FindByCustomerEmail(gomock.Any(), "alice@example.com").Return([]domain.Payment{
		{TransactionID: "pi_123"},
	}, nil)

	payments, err := service.GetPayments(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
}
