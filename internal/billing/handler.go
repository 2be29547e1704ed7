package billing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sinaliza/sinaliza-api/internal/config"
)

type Handler struct {
	service BillingService
}

func NewHandler(service BillingService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list plans")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, plans)
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreatePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" || dto.PriceCents <= 0 || dto.DurationDays <= 0 {
		http.Error(w, "name, price_cents and duration_days required", http.StatusBadRequest)
		return
	}

	plan, err := h.service.CreatePlan(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create plan")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, plan)
}

func (h *Handler) GrantSubscription(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GrantSubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.GrantSubscription(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid user_id or plan_id", http.StatusBadRequest)
		case errors.Is(err, ErrPlanNotFound):
			http.Error(w, "plan not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to grant subscription")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, t)
}
