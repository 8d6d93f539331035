package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/entradasya/checkout-service/internal/usecase"
)

type ExportHandler struct {
	Usecase usecase.CheckoutUsecase
}

func NewExportHandler(uc usecase.CheckoutUsecase) *ExportHandler {
	return &ExportHandler{Usecase: uc}
}

// DownloadBuyers handles GET /buyers: regenerates the CSV and streams it back.
func (h *ExportHandler) DownloadBuyers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path, err := h.Usecase.ExportBuyers()
	if err != nil {
		slog.Error("buyers export failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "failed to export buyers")
		return
	}

	file, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open export file", "path", path, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "failed to export buyers")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	if _, err := io.Copy(w, file); err != nil {
		slog.Error("failed to stream export file", "path", path, "error", err.Error())
	}
}
