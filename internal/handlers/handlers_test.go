package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sakibulla/AS-11-Server/internal/handlers/bookings"
	"github.com/sakibulla/AS-11-Server/internal/handlers/decorators"
	"github.com/sakibulla/AS-11-Server/internal/handlers/payments"
	"github.com/sakibulla/AS-11-Server/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		BookingService:   bookings.NewMockService(ctrl),
		PaymentService:   payments.NewMockService(ctrl),
		DecoratorService: decorators.NewMockService(ctrl),
	}

	h := New(services, nil)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingHandler := NewMockBookingHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockDecoratorHandler := NewMockDecoratorHandler(ctrl)

	mockBookingHandler.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetBookings(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetBookingBySession(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetBookingsByDecorator(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().DeleteBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().AssignDecorator(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetPayments(gomock.Any(), gomock.Any()).AnyTimes()
	mockDecoratorHandler.EXPECT().Apply(gomock.Any(), gomock.Any()).AnyTimes()
	mockDecoratorHandler.EXPECT().GetDecorators(gomock.Any(), gomock.Any()).AnyTimes()
	mockDecoratorHandler.EXPECT().GetDecorator(gomock.Any(), gomock.Any()).AnyTimes()
	mockDecoratorHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockDecoratorHandler.EXPECT().DeleteDecorator(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		BookingHandler:   mockBookingHandler,
		PaymentHandler:   mockPaymentHandler,
		DecoratorHandler: mockDecoratorHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/bookings", http.StatusOK},
		{"GET", "/bookings", http.StatusOK},
		{"GET", "/bookings/b1", http.StatusOK},
		{"DELETE", "/bookings/b1", http.StatusOK},
		{"GET", "/bookings/session/cs_1", http.StatusOK},
		{"GET", "/bookings/decorator/dec1", http.StatusOK},
		{"PATCH", "/bookings/b1/assign-decorator", http.StatusOK},
		{"PATCH", "/bookings/b1/status", http.StatusOK},
		{"POST", "/create-checkout-session", http.StatusOK},
		{"PATCH", "/payment-success", http.StatusOK},
		{"POST", "/webhook", http.StatusOK},
		{"GET", "/payments", http.StatusOK},
		{"POST", "/decorator", http.StatusOK},
		{"GET", "/decorators", http.StatusOK},
		{"GET", "/decorators/dec1", http.StatusOK},
		{"PATCH", "/decorators/dec1", http.StatusOK},
		{"DELETE", "/decorators/dec1", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
