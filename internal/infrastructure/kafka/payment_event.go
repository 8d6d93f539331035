package publisher

type PaymentEvent struct {
	BuyerID 	string	`json:"buyer_id"`
	PreferenceID string	`json:"preference_id,omitempty"`
	PaymentID 	string	`json:"payment_id,omitempty"`
	Status 		string	`json:"status"`
	Quantity 	int64	`json:"quantity"`
	Email 		string	`json:"email"`
}
