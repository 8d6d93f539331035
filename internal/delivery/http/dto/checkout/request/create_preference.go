package request

// Field names follow the storefront payload.
type CreatePreferenceRequest struct {
	Title 		string 	`json:"title"`
	Quantity 	int64 	`json:"quantity"`
	Price 		float64 `json:"price"`
	PhoneNumber string 	`json:"phoneNumber"`
	FirstName 	string 	`json:"firstName"`
	LastName 	string 	`json:"lastName"`
	Email 		string 	`json:"email"`
	Status 		string 	`json:"status"`
}
