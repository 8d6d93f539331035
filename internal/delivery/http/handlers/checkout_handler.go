package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/entradasya/checkout-service/internal/delivery/http/dto/checkout/request"
	"github.com/entradasya/checkout-service/internal/delivery/http/dto/checkout/response"
	"github.com/entradasya/checkout-service/internal/usecase"
	checkoutdto "github.com/entradasya/checkout-service/internal/usecase/dto/checkout"
)

type CheckoutHandler struct {
	Usecase usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{Usecase: uc}
}

// CreatePreference handles POST /create_preference.
func (h *CheckoutHandler) CreatePreference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req request.CreatePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output, err := h.Usecase.CreateCheckout(&checkoutdto.CreateCheckoutInput{
		Title: req.Title,
		Quantity: req.Quantity,
		Price: req.Price,
		PhoneNumber: req.PhoneNumber,
		FirstName: req.FirstName,
		LastName: req.LastName,
		Email: req.Email,
		Status: req.Status,
	})
	if err != nil {
		slog.Error("create preference failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "failed to create preference")
		return
	}

	writeJSON(w, http.StatusOK, response.CreatePreferenceResponse{RedirectURL: output.RedirectURL})
}
