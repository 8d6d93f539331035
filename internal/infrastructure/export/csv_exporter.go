package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/entradasya/checkout-service/internal/domain"
)

var csvHeader = []string{"ID", "First Name", "Last Name", "Email", "Phone Number", "Quantity", "Status"}

type CSVExporter struct {
	FilePath string
}

func NewCSVExporter(filePath string) *CSVExporter {
	return &CSVExporter{FilePath: filePath}
}

// Export rewrites the file from scratch on every call, replacing any previous
// export. Returns the path of the written file.
func (e *CSVExporter) Export(buyers []*domain.Buyer) (string, error) {
	file, err := os.Create(e.FilePath)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing export header: %w", err)
	}

	for _, buyer := range buyers {
		record := []string{
			buyer.ID,
			buyer.FirstName,
			buyer.LastName,
			buyer.Email,
			buyer.PhoneNumber,
			strconv.FormatInt(buyer.Quantity, 10),
			string(buyer.Status),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("writing export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flushing export file: %w", err)
	}

	return e.FilePath, nil
}
