package usecase

import (
	"fmt"

	"github.com/entradasya/checkout-service/internal/domain"
)

// ExportBuyers dumps every buyer to the export file and returns its path.
// The previous export, if any, is replaced.
func (uc *DefaultCheckoutUsecase) ExportBuyers() (string, error) {
	buyers, err := uc.BuyerRepo.GetAllBuyers()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportBuyers, err)
	}

	path, err := uc.Exporter.Export(buyers)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportBuyers, err)
	}

	uc.Metrics.BuyersExportedTotal.Add(float64(len(buyers)))

	return path, nil
}
