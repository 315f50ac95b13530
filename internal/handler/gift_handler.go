package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gift-shop/internal/model"
	"gift-shop/internal/order"
	"gift-shop/internal/service"

	"github.com/rs/zerolog"
)

// GiftHandler handles gift purchase HTTP requests.
type GiftHandler struct {
	service service.GiftService
	logger  zerolog.Logger
}

// NewGiftHandler creates a new gift handler.
func NewGiftHandler(service service.GiftService, logger zerolog.Logger) *GiftHandler {
	return &GiftHandler{
		service: service,
		logger:  logger.With().Str("handler", "gift").Logger(),
	}
}

// Purchase handles POST /api/gifts requests.
func (h *GiftHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	cert, err := h.service.Purchase(r.Context(), &req)
	if err != nil {
		var validationErr *order.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeFieldErrors(w, validationErr.Fields, h.logger)
		case errors.Is(err, model.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "product not found", h.logger)
		default:
			// Single user-facing failure notice; the client keeps the form
			// input so the user can retry.
			writeError(w, http.StatusInternalServerError, "code reservation failed, please try again", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusCreated, cert)
}
