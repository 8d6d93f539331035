package mercadopago

import "encoding/json"

// Wire types for the MercadoPago REST API.

type preferenceItem struct {
	Title 	   string  `json:"title"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferencePayerPhone struct {
	Number string `json:"number"`
}

type preferencePayer struct {
	Phone preferencePayerPhone `json:"phone"`
}

type preferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	Items 			  []preferenceItem 	 `json:"items"`
	Payer 			  preferencePayer 	 `json:"payer"`
	BackURLs 		  preferenceBackURLs `json:"back_urls"`
	AutoReturn 		  string 			 `json:"auto_return,omitempty"`
	NotificationURL   string 			 `json:"notification_url,omitempty"`
	ExternalReference string 			 `json:"external_reference"`
}

type preferenceResponse struct {
	ID 		  string `json:"id"`
	InitPoint string `json:"init_point"`
}

// payment IDs come back numeric from the API
type paymentResponse struct {
	ID 				  json.Number `json:"id"`
	Status 			  string 	  `json:"status"`
	ExternalReference string 	  `json:"external_reference"`
}

type apiErrorResponse struct {
	Message string `json:"message"`
}
