package model

// PaymentOutcome tells the browser where to go after a payment callback has been verified.
type PaymentOutcome struct {
	Verified  bool   `json:"verified"`
	Reference string `json:"reference,omitempty"`
	Message   string `json:"message"`
	Redirect  string `json:"redirect"`
}
