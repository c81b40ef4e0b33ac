package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/dto"
	"github.com/sakibulla/AS-11-Server/internal/service/bookingservice"
	"github.com/sakibulla/AS-11-Server/pkg/metrics"
	"github.com/sakibulla/AS-11-Server/pkg/utils"
	"github.com/sakibulla/AS-11-Server/pkg/validate"
)

//go:generate mockgen -source=bookings.go -destination=mocks.go -package=bookings

type Service interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBookings(ctx context.Context, userEmail string) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	GetBookingBySession(ctx context.Context, sessionID string) (*domain.Booking, error)
	GetBookingsByDecorator(ctx context.Context, decoratorID string) ([]domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	AssignDecorator(ctx context.Context, bookingID string, assignedTo string) (bool, error)
	UpdateBookingStatus(ctx context.Context, id string, bookingStatus string) (bool, error)
}

type BookingHandler struct {
	bookingService Service
	metrics        *metrics.Metrics
}

func New(bookingService Service, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		metrics:        m,
	}
}

// CreateBooking accepts a service request and stores it unpaid.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	booking := &domain.Booking{
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		BookingDate: req.BookingDate,
		Location:    req.Location,
		Price:       req.Price,
	}

	created, err := h.bookingService.CreateBooking(r.Context(), booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.IncBookingsCreated()
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(created))
}

func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("userEmail")

	bookings, err := h.bookingService.GetBookings(r.Context(), userEmail)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(bookings))
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	booking, err := h.bookingService.GetBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingservice.ErrBookingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(booking))
}

// GetBookingBySession resolves a booking from the checkout session reference
// the success page carries in its URL.
func (h *BookingHandler) GetBookingBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	booking, err := h.bookingService.GetBookingBySession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, bookingservice.ErrBookingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(booking))
}

func (h *BookingHandler) GetBookingsByDecorator(w http.ResponseWriter, r *http.Request) {
	decoratorID := chi.URLParam(r, "decoratorId")

	bookings, err := h.bookingService.GetBookingsByDecorator(r.Context(), decoratorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(bookings))
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.bookingService.DeleteBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingservice.ErrBookingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Booking removed successfully"})
}

// AssignDecorator assigns or clears the fulfilment agent. Sending the
// "unassigned" sentinel or an empty value clears the assignment.
func (h *BookingHandler) AssignDecorator(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.AssignDecoratorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	modified, err := h.bookingService.AssignDecorator(r.Context(), id, req.AssignedTo)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		case errors.Is(err, bookingservice.ErrInvalidAssignee):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid decorator id")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if !modified {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: false, Message: "No changes made"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Decorator assignment updated"})
}

func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateBookingStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	modified, err := h.bookingService.UpdateBookingStatus(r.Context(), id, req.BookingStatus)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !modified {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: false, Message: "No changes made"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Booking status updated successfully"})
}

func toResponseDTO(b *domain.Booking) dto.BookingResponseDTO {
	return dto.BookingResponseDTO{
		ID:            b.ID,
		UserName:      b.UserName,
		UserEmail:     b.UserEmail,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		BookingDate:   b.BookingDate,
		Location:      b.Location,
		Price:         b.Price,
		Status:        b.Status,
		BookingStatus: b.BookingStatus,
		AssignedTo:    b.AssignedTo,
		SessionID:     b.SessionID,
	}
}

func toResponseDTOs(bookings []domain.Booking) []dto.BookingResponseDTO {
	response := make([]dto.BookingResponseDTO, 0, len(bookings))
	for i := range bookings {
		response = append(response, toResponseDTO(&bookings[i]))
	}
	return response
}
