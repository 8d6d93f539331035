package checkoutdto

type CreateCheckoutOutput struct {
	BuyerID 	 string
	PreferenceID string
	RedirectURL  string
}
