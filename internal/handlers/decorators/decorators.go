package decorators

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"github.com/sakibulla/AS-11-Server/internal/dto"
	"github.com/sakibulla/AS-11-Server/internal/service/decoratorservice"
	"github.com/sakibulla/AS-11-Server/pkg/utils"
	"github.com/sakibulla/AS-11-Server/pkg/validate"
)

//go:generate mockgen -source=decorators.go -destination=mocks.go -package=decorators

type Service interface {
	Apply(ctx context.Context, name, email string) (*domain.Decorator, error)
	GetDecorators(ctx context.Context, status string) ([]domain.Decorator, error)
	GetDecorator(ctx context.Context, id string) (*domain.Decorator, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	DeleteDecorator(ctx context.Context, id string) error
}

type DecoratorHandler struct {
	decoratorService Service
}

func New(decoratorService Service) *DecoratorHandler {
	return &DecoratorHandler{decoratorService: decoratorService}
}

// Apply registers a decorator application in pending state.
func (h *DecoratorHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.DecoratorApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.decoratorService.Apply(r.Context(), req.Name, req.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit application")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(created))
}

func (h *DecoratorHandler) GetDecorators(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	decorators, err := h.decoratorService.GetDecorators(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch decorators")
		return
	}

	response := make([]dto.DecoratorResponseDTO, 0, len(decorators))
	for i := range decorators {
		response = append(response, toResponseDTO(&decorators[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *DecoratorHandler) GetDecorator(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	decorator, err := h.decoratorService.GetDecorator(r.Context(), id)
	if err != nil {
		if errors.Is(err, decoratorservice.ErrDecoratorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Decorator not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(decorator))
}

func (h *DecoratorHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateDecoratorStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.decoratorService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, decoratorservice.ErrDecoratorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Decorator not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Decorator status updated"})
}

func (h *DecoratorHandler) DeleteDecorator(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.decoratorService.DeleteDecorator(r.Context(), id); err != nil {
		if errors.Is(err, decoratorservice.ErrDecoratorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Decorator not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Decorator removed successfully"})
}

func toResponseDTO(d *domain.Decorator) dto.DecoratorResponseDTO {
	return dto.DecoratorResponseDTO{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Status:    d.Status,
		Earnings:  d.Earnings,
		CreatedAt: d.CreatedAt,
	}
}
