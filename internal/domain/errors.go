package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCreateBuyer  = errors.New("failed to create buyer")
	ErrExportBuyers = errors.New("failed to export buyers")
)

// GatewayError carries the HTTP status the payment gateway answered with,
// so the webhook handler can forward the same code.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway responded with status %d: %s", e.StatusCode, e.Message)
}
