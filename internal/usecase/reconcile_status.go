package usecase

import (
	"log/slog"
	"time"

	publisher "github.com/entradasya/checkout-service/internal/infrastructure/kafka"
	"github.com/google/uuid"
)

// ReconcileStatus looks the payment up at the gateway and copies its status
// onto the buyer referenced by external_reference. Safe to run twice for the
// same notification: the second update overwrites with the same value.
func (uc *DefaultCheckoutUsecase) ReconcileStatus(paymentID string) error {
	gatewayStart := time.Now()
	payment, err := uc.Gateway.GetPayment(paymentID)
	uc.Metrics.GatewayRequestDuration.WithLabelValues("get_payment").Observe(time.Since(gatewayStart).Seconds())
	if err != nil {
		return err
	}

	buyerID, err := uuid.Parse(payment.ExternalReference)
	if err != nil {
		// Not a reference we issued. The webhook is acknowledged, nothing to update.
		slog.Warn("webhook carried unusable external reference", "payment_id", paymentID, "external_reference", payment.ExternalReference)
		return nil
	}

	// Zero matched rows is a successful no-op.
	if err := uc.BuyerRepo.UpdateBuyerStatus(buyerID.String(), payment.Status); err != nil {
		return err
	}

	uc.Metrics.PaymentStatusUpdatesTotal.WithLabelValues(string(payment.Status)).Inc()

	go func(event publisher.PaymentEvent){
		if err := uc.Publisher.PublishPayment(uc.Settings.PaymentTopic, event); err != nil {
			slog.Error("failed to publish kafka PaymentEvent", "stage", "reconciliation", "error", err.Error())
		}
	}(publisher.PaymentEvent{
		BuyerID: buyerID.String(),
		PaymentID: payment.ID,
		Status: string(payment.Status),
	})

	return nil
}
