package domain

type BuyerRepository interface {
	CreateBuyer(buyer *Buyer) (string, error)
	UpdateBuyerStatus(buyerID string, newStatus PaymentStatus) error
	GetAllBuyers() ([]*Buyer, error)
}
