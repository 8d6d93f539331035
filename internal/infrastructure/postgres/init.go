package postgres

import (
	"log"

	"github.com/entradasya/checkout-service/internal/config"
	"github.com/entradasya/checkout-service/internal/infrastructure/logger"
	"github.com/entradasya/checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CheckoutConfig) *gorm.DB {
	dsn := cfg.CheckoutDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.BuyerModel{}, &logger.CheckoutCreatedEvent{}, &logger.CheckoutFailedEvent{})

	return db
}
