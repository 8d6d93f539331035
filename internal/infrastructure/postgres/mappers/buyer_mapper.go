package mappers

import (
	"github.com/entradasya/checkout-service/internal/domain"
	"github.com/entradasya/checkout-service/internal/infrastructure/postgres/models"
)

func ToDomainBuyer(model *models.BuyerModel) *domain.Buyer {
	return &domain.Buyer{
		ID: model.ID,
		FirstName: model.FirstName,
		LastName: model.LastName,
		Email: model.Email,
		PhoneNumber: model.PhoneNumber,
		Quantity: model.Quantity,
		Status: model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMBuyer(buyer *domain.Buyer) *models.BuyerModel {
	return &models.BuyerModel{
		ID: buyer.ID,
		FirstName: buyer.FirstName,
		LastName: buyer.LastName,
		Email: buyer.Email,
		PhoneNumber: buyer.PhoneNumber,
		Quantity: buyer.Quantity,
		Status: buyer.Status,
		CreatedAt: buyer.CreatedAt,
		UpdatedAt: buyer.UpdatedAt,
	}
}
