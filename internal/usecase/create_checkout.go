package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/entradasya/checkout-service/internal/domain"
	publisher "github.com/entradasya/checkout-service/internal/infrastructure/kafka"
	"github.com/entradasya/checkout-service/internal/infrastructure/logger"
	checkoutdto "github.com/entradasya/checkout-service/internal/usecase/dto/checkout"
)

func (uc *DefaultCheckoutUsecase) CreateCheckout(input *checkoutdto.CreateCheckoutInput) (*checkoutdto.CreateCheckoutOutput, error) {
	// Stored quantity is derived from price, not from the caller-supplied
	// quantity. The gateway line item still gets the caller's values verbatim.
	storedQuantity := int64(math.Floor(input.Price / uc.Settings.UnitPrice))

	buyer := &domain.Buyer{
		FirstName: input.FirstName,
		LastName: input.LastName,
		Email: input.Email,
		PhoneNumber: input.PhoneNumber,
		Quantity: storedQuantity,
		Status: domain.PaymentStatus(input.Status),
	}

	// Buyer goes in first. If the gateway call below fails the row stays
	// behind with no payment attached.
	buyerID, err := uc.BuyerRepo.CreateBuyer(buyer)
	if err != nil {
		uc.Metrics.CheckoutErrorsTotal.WithLabelValues("store").Inc()
		uc.logFailed(logger.CheckoutFailedEvent{
			Stage: "store",
			Reason: err.Error(),
			Email: input.Email,
			Price: input.Price,
			Timestamp: time.Now(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateBuyer, err)
	}

	gatewayStart := time.Now()
	preference, err := uc.Gateway.CreatePreference(&domain.PreferenceRequest{
		Items: []domain.PreferenceItem{
			{
				Title: input.Title,
				Quantity: input.Quantity,
				UnitPrice: input.Price,
				CurrencyID: uc.Settings.CurrencyID,
			},
		},
		PayerPhone: input.PhoneNumber,
		BackURLs: uc.Settings.BackURLs,
		AutoReturn: "approved",
		NotificationURL: uc.Settings.NotificationURL,
		ExternalReference: buyerID,
	})
	uc.Metrics.GatewayRequestDuration.WithLabelValues("create_preference").Observe(time.Since(gatewayStart).Seconds())
	if err != nil {
		slog.Error("preference creation failed, buyer stored without payment", "buyer_id", buyerID, "error", err.Error())
		uc.Metrics.CheckoutErrorsTotal.WithLabelValues("gateway").Inc()
		uc.logFailed(logger.CheckoutFailedEvent{
			BuyerID: buyerID,
			Stage: "gateway",
			Reason: err.Error(),
			Email: input.Email,
			Price: input.Price,
			Timestamp: time.Now(),
		})
		return nil, err
	}

	uc.Metrics.CheckoutsCreatedTotal.WithLabelValues(uc.Settings.CurrencyID).Inc()

	if err := uc.EventLogger.LogCheckoutCreated(context.Background(), logger.CheckoutCreatedEvent{
		BuyerID: buyerID,
		PreferenceID: preference.ID,
		Email: input.Email,
		Quantity: storedQuantity,
		Price: input.Price,
		Timestamp: time.Now(),
	}); err != nil {
		slog.Error("failed to log checkout created event", "buyer_id", buyerID, "error", err.Error())
	}

	go func(event publisher.PaymentEvent){
		if err := uc.Publisher.PublishPayment(uc.Settings.PaymentTopic, event); err != nil {
			slog.Error("failed to publish kafka PaymentEvent", "stage", "checkout", "error", err.Error())
		}
	}(publisher.PaymentEvent{
		BuyerID: buyerID,
		PreferenceID: preference.ID,
		Status: string(buyer.Status),
		Quantity: storedQuantity,
		Email: input.Email,
	})

	return &checkoutdto.CreateCheckoutOutput{
		BuyerID: buyerID,
		PreferenceID: preference.ID,
		RedirectURL: preference.InitPoint,
	}, nil
}

func (uc *DefaultCheckoutUsecase) logFailed(event logger.CheckoutFailedEvent) {
	if err := uc.EventLogger.LogCheckoutFailed(context.Background(), event); err != nil {
		slog.Error("failed to log checkout failed event", "stage", event.Stage, "error", err.Error())
	}
}
