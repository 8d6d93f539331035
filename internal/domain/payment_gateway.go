package domain

type PreferenceItem struct {
	Title 	   string
	Quantity   int64
	UnitPrice  float64
	CurrencyID string
}

type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// PreferenceRequest is a request for a gateway-side checkout session.
// ExternalReference carries the buyer ID so the webhook can be correlated back.
type PreferenceRequest struct {
	Items 			  []PreferenceItem
	PayerPhone 		  string
	BackURLs 		  BackURLs
	AutoReturn 		  string
	NotificationURL   string
	ExternalReference string
}

type Preference struct {
	ID 		  string
	InitPoint string
}

type Payment struct {
	ID 				  string
	Status 			  PaymentStatus
	ExternalReference string
}

type PaymentGateway interface {
	CreatePreference(request *PreferenceRequest) (*Preference, error)
	GetPayment(paymentID string) (*Payment, error)
}
