package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/dto"
	"github.com/sakibulla/AS-11-Server/internal/gateway/checkout"
	"github.com/sakibulla/AS-11-Server/internal/service/bookingservice"
	"github.com/sakibulla/AS-11-Server/internal/service/paymentservice"
	"github.com/sakibulla/AS-11-Server/pkg/metrics"
	"github.com/sakibulla/AS-11-Server/pkg/utils"
	"github.com/sakibulla/AS-11-Server/pkg/validate"
)

//go:generate mockgen -source=payments.go -destination=mocks.go -package=payments

// signatureHeader is the name the provider sends its webhook signature under.
const signatureHeader = "Stripe-Signature"

// maxWebhookBody caps raw webhook payloads at 64 KiB.
const maxWebhookBody = 64 << 10

type Service interface {
	CreateCheckoutSession(ctx context.Context, bookingID string, cost float64, parcelName, parcelID, senderEmail string) (string, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*paymentservice.ConfirmResult, error)
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) (bool, error)
	GetPayments(ctx context.Context, customerEmail string) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
	metrics        *metrics.Metrics
}

func New(paymentService Service, m *metrics.Metrics) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		metrics:        m,
	}
}

// CreateCheckoutSession opens a hosted checkout page for a booking and
// returns its URL.
func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCheckoutSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.paymentService.CreateCheckoutSession(r.Context(), req.ID, req.Cost, req.ParcelName, req.ParcelID, req.SenderEmail)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		case errors.Is(err, checkout.ErrUpstreamGateway):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create checkout session")
		}
		return
	}

	h.metrics.IncCheckoutSessions()
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateCheckoutSessionResponseDTO{URL: url})
}

// ConfirmPayment is the client-side confirmation callback, hit from the
// success redirect page with the session id from the URL.
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	result, err := h.paymentService.ConfirmPayment(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPaymentIncomplete):
			utils.RespondWithError(w, http.StatusBadRequest, "Payment not completed")
		case errors.Is(err, checkout.ErrUpstreamGateway):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm payment")
		}
		return
	}

	h.metrics.IncPaymentConfirmations("client")
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmPaymentResponseDTO{
		Success:       true,
		Modified:      result.Modified,
		TrackingID:    result.TrackingID,
		TransactionID: result.TransactionID,
		PaymentInfo:   toResponseDTO(result.Payment),
	})
}

// Webhook is the provider-side confirmation path. The raw body is needed
// for signature verification, so it is read before any decoding.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read payload")
		return
	}

	transitioned, err := h.paymentService.HandleWebhook(r.Context(), payload, r.Header.Get(signatureHeader))
	if err != nil {
		if errors.Is(err, checkout.ErrSignatureVerification) {
			h.metrics.IncWebhookRejections()
			utils.RespondWithError(w, http.StatusBadRequest, "Webhook signature verification failed")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process webhook")
		return
	}

	// Acknowledged events that moved no booking (ignored types, unmatched
	// sessions) are not confirmations.
	if transitioned {
		h.metrics.IncPaymentConfirmations("webhook")
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	customerEmail := r.URL.Query().Get("customerEmail")
	if customerEmail == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "customerEmail is required")
		return
	}

	payments, err := h.paymentService.GetPayments(r.Context(), customerEmail)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(payments))
	for i := range payments {
		response = append(response, toResponseDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponseDTO(p *domain.Payment) dto.PaymentResponseDTO {
	if p == nil {
		return dto.PaymentResponseDTO{}
	}
	return dto.PaymentResponseDTO{
		ID:            p.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		ParcelID:      p.ParcelID,
		ParcelName:    p.ParcelName,
		TransactionID: p.TransactionID,
		PaymentStatus: p.PaymentStatus,
		TrackingID:    p.TrackingID,
		PaidAt:        p.PaidAt,
	}
}
