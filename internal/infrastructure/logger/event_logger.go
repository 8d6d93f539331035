package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type CheckoutCreatedEvent struct {
	ID 			 uint 	`gorm:"primaryKey"`
	BuyerID 	 string
	PreferenceID string
	Email 		 string
	Quantity 	 int64
	Price 		 float64
	Timestamp 	 time.Time
}

type CheckoutFailedEvent struct {
	ID 			uint 	`gorm:"primaryKey"`
	BuyerID 	string
	Stage 		string
	Reason 		string
	Email 		string
	Price 		float64
	Timestamp 	time.Time
}

type CheckoutEventLogger interface {
	LogCheckoutCreated(ctx context.Context, event CheckoutCreatedEvent) error
	LogCheckoutFailed(ctx context.Context, event CheckoutFailedEvent) error
}

type PGCheckoutEventLogger struct {
	db *gorm.DB
}

func NewPGCheckoutEventLogger(db *gorm.DB) *PGCheckoutEventLogger {
	return &PGCheckoutEventLogger{db: db}
}

func (l *PGCheckoutEventLogger) LogCheckoutCreated(ctx context.Context, event CheckoutCreatedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGCheckoutEventLogger) LogCheckoutFailed(ctx context.Context, event CheckoutFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
