package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/entradasya/checkout-service/internal/domain"
	"github.com/entradasya/checkout-service/internal/usecase"
)

type StatusHandler struct {
	Usecase usecase.CheckoutUsecase
}

func NewStatusHandler(uc usecase.CheckoutUsecase) *StatusHandler {
	return &StatusHandler{Usecase: uc}
}

// UpdateStatus handles POST /update_status?id=<gateway payment id>.
// A non-OK answer from the gateway is forwarded with the same status code.
func (h *StatusHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	paymentID := r.URL.Query().Get("id")
	if paymentID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.Usecase.ReconcileStatus(paymentID); err != nil {
		var gatewayErr *domain.GatewayError
		if errors.As(err, &gatewayErr) {
			w.WriteHeader(gatewayErr.StatusCode)
			return
		}
		slog.Error("status reconciliation failed", "payment_id", paymentID, "error", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
