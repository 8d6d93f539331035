package response

type CreatePreferenceResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
