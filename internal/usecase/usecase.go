package usecase

import (
	"github.com/entradasya/checkout-service/internal/domain"
	publisher "github.com/entradasya/checkout-service/internal/infrastructure/kafka"
	"github.com/entradasya/checkout-service/internal/infrastructure/logger"
	"github.com/entradasya/checkout-service/internal/infrastructure/metrics"
	checkoutdto "github.com/entradasya/checkout-service/internal/usecase/dto/checkout"
)

type CheckoutUsecase interface {
	CreateCheckout(input *checkoutdto.CreateCheckoutInput) (*checkoutdto.CreateCheckoutOutput, error)
	ReconcileStatus(paymentID string) error
	ExportBuyers() (string, error)
}

// PaymentEventPublisher is what the usecase needs from the kafka publisher:
// the generic message port plus the typed payment event helper.
type PaymentEventPublisher interface {
	domain.PublisherPort
	PublishPayment(topic string, event publisher.PaymentEvent) error
}

// CheckoutSettings is the config slice the checkout flow depends on.
type CheckoutSettings struct {
	UnitPrice 		float64
	CurrencyID 		string
	NotificationURL string
	BackURLs 		domain.BackURLs
	PaymentTopic 	string
}

type DefaultCheckoutUsecase struct {
	BuyerRepo 	domain.BuyerRepository
	Gateway 	domain.PaymentGateway
	Exporter 	domain.BuyerExporter
	Publisher 	PaymentEventPublisher
	EventLogger logger.CheckoutEventLogger
	Metrics 	*metrics.CheckoutMetrics
	Settings 	CheckoutSettings
}

func NewDefaultCheckoutUsecase(
	buyerRepo domain.BuyerRepository,
	gateway domain.PaymentGateway,
	exporter domain.BuyerExporter,
	kafkaPublisher PaymentEventPublisher,
	eventLogger logger.CheckoutEventLogger,
	checkoutMetrics *metrics.CheckoutMetrics,
	settings CheckoutSettings) *DefaultCheckoutUsecase {

	return &DefaultCheckoutUsecase{
		BuyerRepo: buyerRepo,
		Gateway: gateway,
		Exporter: exporter,
		Publisher: kafkaPublisher,
		EventLogger: eventLogger,
		Metrics: checkoutMetrics,
		Settings: settings,
	}
}
