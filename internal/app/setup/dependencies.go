package setup

import (
	"fmt"

	"github.com/entradasya/checkout-service/internal/config"
	"github.com/entradasya/checkout-service/internal/domain"
	"github.com/entradasya/checkout-service/internal/infrastructure/export"
	publisher "github.com/entradasya/checkout-service/internal/infrastructure/kafka"
	"github.com/entradasya/checkout-service/internal/infrastructure/logger"
	"github.com/entradasya/checkout-service/internal/infrastructure/mercadopago"
	"github.com/entradasya/checkout-service/internal/infrastructure/metrics"
	"github.com/entradasya/checkout-service/internal/infrastructure/migrate"
	"github.com/entradasya/checkout-service/internal/infrastructure/postgres"
	"github.com/entradasya/checkout-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config 			 *config.CheckoutConfig
	DB 				 *gorm.DB
	BuyerRepo 		 domain.BuyerRepository
	Gateway 		 domain.PaymentGateway
	Exporter 		 domain.BuyerExporter
	PaymentPublisher *publisher.DefaultKafkaPublisher
	EventLogger 	 logger.CheckoutEventLogger
	Metrics 		 *metrics.CheckoutMetrics
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	gateway, err := mercadopago.NewClient(cfg.MercadoPago.BaseURL, cfg.MercadoPago.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago client: %w", err)
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}

	return &Dependencies{
		Config: cfg,
		DB: db,
		BuyerRepo: repository.NewDefaultBuyerRepository(db),
		Gateway: gateway,
		Exporter: export.NewCSVExporter(cfg.Export.FilePath),
		PaymentPublisher: publisher.NewDefaultKafkaPublisher(brokers),
		EventLogger: logger.NewPGCheckoutEventLogger(db),
		Metrics: metrics.NewCheckoutMetrics(),
	}, nil
}
