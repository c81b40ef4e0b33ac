package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookinghandlers "github.com/sakibulla/AS-11-Server/internal/handlers/bookings"
	decoratorhandlers "github.com/sakibulla/AS-11-Server/internal/handlers/decorators"
	paymenthandlers "github.com/sakibulla/AS-11-Server/internal/handlers/payments"
	"github.com/sakibulla/AS-11-Server/internal/service"
	"github.com/sakibulla/AS-11-Server/pkg/metrics"
)

type BookingHandler interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	GetBookings(w http.ResponseWriter, r *http.Request)
	GetBooking(w http.ResponseWriter, r *http.Request)
	GetBookingBySession(w http.ResponseWriter, r *http.Request)
	GetBookingsByDecorator(w http.ResponseWriter, r *http.Request)
	DeleteBooking(w http.ResponseWriter, r *http.Request)
	AssignDecorator(w http.ResponseWriter, r *http.Request)
	UpdateBookingStatus(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateCheckoutSession(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type DecoratorHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetDecorators(w http.ResponseWriter, r *http.Request)
	GetDecorator(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteDecorator(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BookingHandler   BookingHandler
	PaymentHandler   PaymentHandler
	DecoratorHandler DecoratorHandler
}

func New(s *service.Services, m *metrics.Metrics) *Handlers {
	return &Handlers{
		BookingHandler:   bookinghandlers.New(s.BookingService, m),
		PaymentHandler:   paymenthandlers.New(s.PaymentService, m),
		DecoratorHandler: decoratorhandlers.New(s.DecoratorService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.BookingHandler.CreateBooking)
		r.Get("/", h.BookingHandler.GetBookings)
		r.Get("/session/{sessionId}", h.BookingHandler.GetBookingBySession)
		r.Get("/decorator/{decoratorId}", h.BookingHandler.GetBookingsByDecorator)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.BookingHandler.GetBooking)
			r.Delete("/", h.BookingHandler.DeleteBooking)
			r.Patch("/assign-decorator", h.BookingHandler.AssignDecorator)
			r.Patch("/status", h.BookingHandler.UpdateBookingStatus)
		})
	})

	r.Post("/create-checkout-session", h.PaymentHandler.CreateCheckoutSession)
	r.Patch("/payment-success", h.PaymentHandler.ConfirmPayment)
	r.Post("/webhook", h.PaymentHandler.Webhook)
	r.Get("/payments", h.PaymentHandler.GetPayments)

	r.Post("/decorator", h.DecoratorHandler.Apply)
	r.Route("/decorators", func(r chi.Router) {
		r.Get("/", h.DecoratorHandler.GetDecorators)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.DecoratorHandler.GetDecorator)
			r.Patch("/", h.DecoratorHandler.UpdateStatus)
			r.Delete("/", h.DecoratorHandler.DeleteDecorator)
		})
	})

	return r
}
