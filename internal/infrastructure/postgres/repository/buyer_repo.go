package repository

import (
	"github.com/entradasya/checkout-service/internal/domain"
	"github.com/entradasya/checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/entradasya/checkout-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultBuyerRepository struct {
	DB *gorm.DB
}

func NewDefaultBuyerRepository(db *gorm.DB) *DefaultBuyerRepository {
	return &DefaultBuyerRepository{DB: db}
}

// CreateBuyer assigns the buyer ID on insert and returns it. The ID is what
// goes out as the preference external_reference.
func (r *DefaultBuyerRepository) CreateBuyer(buyer *domain.Buyer) (string, error) {
	buyerModel := mappers.ToGORMBuyer(buyer)
	if buyerModel.ID == "" {
		buyerModel.ID = uuid.New().String()
	}
	if err := r.DB.Create(buyerModel).Error; err != nil {
		return "", err
	}
	buyer.ID = buyerModel.ID
	return buyerModel.ID, nil
}

// UpdateBuyerStatus touches only the status column. Zero matched rows is not
// an error: webhooks for unknown references are a no-op.
func (r *DefaultBuyerRepository) UpdateBuyerStatus(buyerID string, newStatus domain.PaymentStatus) error {
	if err := r.DB.Model(&models.BuyerModel{}).
		Where("id = ?", buyerID).
		Update("status", newStatus).Error; err != nil {
		return err
	}

	return nil
}

func (r *DefaultBuyerRepository) GetAllBuyers() ([]*domain.Buyer, error) {
	var buyerModels []models.BuyerModel
	if err := r.DB.Order("created_at ASC").Find(&buyerModels).Error; err != nil {
		return nil, err
	}

	buyers := make([]*domain.Buyer, 0, len(buyerModels))
	for i := range buyerModels {
		buyers = append(buyers, mappers.ToDomainBuyer(&buyerModels[i]))
	}

	return buyers, nil
}
