package models

import "time"

// Discount is informational banner state, not tied to any product's
// DiscountPercentage.
type Discount struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	Code        string     `json:"code,omitempty"`
}
