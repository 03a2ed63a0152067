// Package quote aggregates finalized customizations into estimates and
// hands them to a submission sink.
package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/woodendoors/doorshowcase/cart"
	"github.com/woodendoors/doorshowcase/models"
)

var ErrEmptyCart = errors.New("quote: cart is empty")

// Build sums the records into a single estimate, preserving cart order.
func Build(records []models.ProductCustomization) models.Quote {
	items := make([]models.ProductCustomization, len(records))
	copy(items, records)

	var total float64
	for _, r := range items {
		total += r.TotalPrice
	}
	return models.Quote{LineItems: items, Total: total}
}

// Request is what the sink receives: the estimate plus contact fields.
type Request struct {
	Contact models.QuoteContact `json:"contact"`
	Quote   models.Quote        `json:"quote"`
}

// Service drives the two quote paths. Only the whole-cart path clears
// the cart, and only after the sink reports success.
type Service struct {
	sink Sink
	cart *cart.Store
}

func NewService(sink Sink, store *cart.Store) *Service {
	return &Service{sink: sink, cart: store}
}

// SubmitSingle quotes one customization directly. The cart is not
// involved at any point.
func (s *Service) SubmitSingle(ctx context.Context, contact models.QuoteContact, rec models.ProductCustomization) (Receipt, error) {
	req := Request{Contact: contact, Quote: Build([]models.ProductCustomization{rec})}
	receipt, err := s.sink.Submit(ctx, req)
	if err != nil {
		return Receipt{}, fmt.Errorf("submit quote: %w", err)
	}
	return receipt, nil
}

// SubmitCart quotes the whole cart and clears it on success.
func (s *Service) SubmitCart(ctx context.Context, contact models.QuoteContact) (Receipt, error) {
	items, _ := s.cart.Snapshot()
	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	req := Request{Contact: contact, Quote: Build(items)}
	receipt, err := s.sink.Submit(ctx, req)
	if err != nil {
		return Receipt{}, fmt.Errorf("submit cart quote: %w", err)
	}
	s.cart.Clear()
	return receipt, nil
}
