package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/entradasya/checkout-service/internal/delivery/http/dto/checkout/response"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response.ErrorResponse{Error: message})
}
