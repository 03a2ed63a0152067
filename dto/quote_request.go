package dto

// CreateQuoteRequestDTO asks for a quote on a single customization,
// bypassing the cart.
type CreateQuoteRequestDTO struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`

	Customization CustomizationInputDTO `json:"customization" binding:"required"`
}

// CreateCartQuoteDTO asks for a quote covering the whole cart.
type CreateCartQuoteDTO struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}
