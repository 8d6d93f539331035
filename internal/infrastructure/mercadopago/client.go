package mercadopago

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/entradasya/checkout-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type Client struct {
	BaseURL 	string
	AccessToken string

	httpClient 		  *http.Client
	newIdempotencyKey func() string
}

func NewClient(baseURL, accessToken string) (*Client, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}

	return &Client{
		BaseURL: baseURL,
		AccessToken: accessToken,
		httpClient: http.DefaultClient,
		newIdempotencyKey: idGenerator,
	}, nil
}

func (c *Client) CreatePreference(request *domain.PreferenceRequest) (*domain.Preference, error) {
	items := make([]preferenceItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, preferenceItem{
			Title: item.Title,
			Quantity: item.Quantity,
			UnitPrice: item.UnitPrice,
			CurrencyID: item.CurrencyID,
		})
	}

	requestBodyBytes, err := json.Marshal(preferenceRequest{
		Items: items,
		Payer: preferencePayer{
			Phone: preferencePayerPhone{Number: request.PayerPhone},
		},
		BackURLs: preferenceBackURLs{
			Success: request.BackURLs.Success,
			Failure: request.BackURLs.Failure,
			Pending: request.BackURLs.Pending,
		},
		AutoReturn: request.AutoReturn,
		NotificationURL: request.NotificationURL,
		ExternalReference: request.ExternalReference,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/checkout/preferences", c.BaseURL), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("X-Idempotency-Key", c.newIdempotencyKey())

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var preference preferenceResponse
		if err := json.Unmarshal(responseBodyBytes, &preference); err != nil {
			return nil, err
		}
		return &domain.Preference{
			ID: preference.ID,
			InitPoint: preference.InitPoint,
		}, nil
	}else {
		var apiError apiErrorResponse
		if err := json.Unmarshal(responseBodyBytes, &apiError); err != nil {
			apiError.Message = string(responseBodyBytes)
		}
		return nil, &domain.GatewayError{
			StatusCode: response.StatusCode,
			Message: apiError.Message,
		}
	}
}

func (c *Client) GetPayment(paymentID string) (*domain.Payment, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/v1/payments/%s", c.BaseURL, paymentID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var payment paymentResponse
		if err := json.Unmarshal(responseBodyBytes, &payment); err != nil {
			return nil, err
		}
		return &domain.Payment{
			ID: payment.ID.String(),
			Status: domain.PaymentStatus(payment.Status),
			ExternalReference: payment.ExternalReference,
		}, nil
	}else {
		var apiError apiErrorResponse
		if err := json.Unmarshal(responseBodyBytes, &apiError); err != nil {
			apiError.Message = string(responseBodyBytes)
		}
		return nil, &domain.GatewayError{
			StatusCode: response.StatusCode,
			Message: apiError.Message,
		}
	}
}
