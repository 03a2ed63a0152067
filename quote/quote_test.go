package quote_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodendoors/doorshowcase/cart"
	"github.com/woodendoors/doorshowcase/models"
	"github.com/woodendoors/doorshowcase/quote"
	"github.com/woodendoors/doorshowcase/storage"
)

type recordingSink struct {
	requests []quote.Request
	fail     bool
}

func (s *recordingSink) Submit(_ context.Context, req quote.Request) (quote.Receipt, error) {
	if s.fail {
		return quote.Receipt{}, errors.New("sink unavailable")
	}
	s.requests = append(s.requests, req)
	return quote.Receipt{ReferenceID: "ref-1", SubmittedAt: time.Now()}, nil
}

func item(id string, price float64) models.ProductCustomization {
	return models.ProductCustomization{
		ProductID:    id,
		ProductName:  "Door " + id,
		MaterialType: "oak",
		ColorFinish:  "natural",
		GlassPanel:   "none",
		Dimensions:   models.StandardDimensions(),
		TotalPrice:   price,
	}
}

func newCart(t *testing.T) *cart.Store {
	t.Helper()
	kv, err := storage.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	return cart.NewStore(kv)
}

func TestBuild(t *testing.T) {
	q := quote.Build([]models.ProductCustomization{item("a", 100.00), item("b", 250.50)})
	require.Len(t, q.LineItems, 2)
	assert.Equal(t, "a", q.LineItems[0].ProductID)
	assert.Equal(t, "b", q.LineItems[1].ProductID)
	assert.InDelta(t, 350.50, q.Total, 1e-9)

	empty := quote.Build(nil)
	assert.Empty(t, empty.LineItems)
	assert.Zero(t, empty.Total)
}

func TestSubmitCartClearsCartOnSuccess(t *testing.T) {
	store := newCart(t)
	store.Add(item("a", 100))
	store.Add(item("b", 250.50))
	sink := &recordingSink{}
	svc := quote.NewService(sink, store)

	receipt, err := svc.SubmitCart(context.Background(), models.QuoteContact{FullName: "Jo", Email: "jo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ref-1", receipt.ReferenceID)
	assert.Equal(t, 0, store.Len())

	require.Len(t, sink.requests, 1)
	assert.Len(t, sink.requests[0].Quote.LineItems, 2)
	assert.InDelta(t, 350.50, sink.requests[0].Quote.Total, 1e-9)
}

func TestSubmitCartFailureKeepsCart(t *testing.T) {
	store := newCart(t)
	store.Add(item("a", 100))
	svc := quote.NewService(&recordingSink{fail: true}, store)

	_, err := svc.SubmitCart(context.Background(), models.QuoteContact{})
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestSubmitCartEmpty(t *testing.T) {
	svc := quote.NewService(&recordingSink{}, newCart(t))

	_, err := svc.SubmitCart(context.Background(), models.QuoteContact{})
	assert.ErrorIs(t, err, quote.ErrEmptyCart)
}

func TestSubmitSingleBypassesCart(t *testing.T) {
	store := newCart(t)
	store.Add(item("already-there", 999))
	sink := &recordingSink{}
	svc := quote.NewService(sink, store)

	_, err := svc.SubmitSingle(context.Background(), models.QuoteContact{FullName: "Jo"}, item("a", 100))
	require.NoError(t, err)

	// the single-item path never touches the cart
	assert.Equal(t, 1, store.Len())
	require.Len(t, sink.requests, 1)
	require.Len(t, sink.requests[0].Quote.LineItems, 1)
	assert.Equal(t, "a", sink.requests[0].Quote.LineItems[0].ProductID)
}

func TestSimulatedSinkSucceedsAfterDelay(t *testing.T) {
	sink := &quote.SimulatedSink{Delay: 20 * time.Millisecond}

	start := time.Now()
	receipt, err := sink.Submit(context.Background(), quote.Request{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.NotEmpty(t, receipt.ReferenceID)
	assert.False(t, receipt.SubmittedAt.IsZero())
}

func TestSimulatedSinkRespectsContext(t *testing.T) {
	sink := &quote.SimulatedSink{Delay: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sink.Submit(ctx, quote.Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
