package models

// Quote packages a set of finalized customizations into one estimate.
type Quote struct {
	LineItems []ProductCustomization `json:"lineItems"`
	Total     float64                `json:"total"`
}

type QuoteContact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message,omitempty"`
}
