package domain

import "time"

type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusApproved PaymentStatus = "approved"
	StatusRejected PaymentStatus = "rejected"
)

type Buyer struct {
	ID 			string
	FirstName 	string
	LastName 	string
	Email 		string
	PhoneNumber string
	Quantity 	int64
	Status 		PaymentStatus
	CreatedAt 	time.Time
	UpdatedAt 	time.Time
}
