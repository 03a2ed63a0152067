package models

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	// Percentage in [0,100]. Zero means no discount.
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	ImageURL           string  `json:"imageUrl"`
	Category           string  `json:"category"`
	Featured           bool    `json:"featured,omitempty"`
}

// EffectivePrice is the price after the product's own discount.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPercentage > 0 {
		return p.Price - p.Price*(p.DiscountPercentage/100)
	}
	return p.Price
}
