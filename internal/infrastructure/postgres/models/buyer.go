package models

import (
	"time"

	"github.com/entradasya/checkout-service/internal/domain"
)

type BuyerModel struct {
	ID 			string 				 `gorm:"primaryKey;type:uuid"`
	FirstName 	string
	LastName 	string
	Email 		string 				 `gorm:"index:idx_email"`
	PhoneNumber string
	Quantity 	int64
	Status 		domain.PaymentStatus `gorm:"index:idx_status"`
	CreatedAt 	time.Time 			 `gorm:"index:idx_created_at"`
	UpdatedAt 	time.Time
}
