package checkoutdto

type CreateCheckoutInput struct {
	Title 		string
	Quantity 	int64
	Price 		float64
	PhoneNumber string
	FirstName 	string
	LastName 	string
	Email 		string
	Status 		string
}
