// Package session holds the per-product configurator state. A session is
// single-use: it ends in exactly one commit or a cancel, and re-opening
// the configurator always creates a fresh one.
package session

import (
	"errors"
	"fmt"

	"github.com/woodendoors/doorshowcase/cart"
	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/models"
	"github.com/woodendoors/doorshowcase/pricing"
)

type State string

const (
	StateEditing   State = "EDITING"
	StateCommitted State = "COMMITTED"
	StateCancelled State = "CANCELLED"
)

var (
	// ErrClosed is returned for any operation after commit or cancel.
	ErrClosed = errors.New("session: already committed or cancelled")
	// ErrStandardSize is returned when width/height are set while custom
	// sizing is disabled.
	ErrStandardSize = errors.New("session: custom sizing is disabled")
)

// NoEditIndex marks a session that appends to the cart instead of
// replacing an existing line.
const NoEditIndex = -1

type Session struct {
	state   State
	product models.Product
	options catalog.Options
	engine  *pricing.Engine

	materialType string
	colorFinish  string
	glassPanel   string
	dims         models.Dimensions
	total        float64

	editIndex int
}

// New seeds a session with the catalog defaults: first option of each
// catalog and the standard size.
func New(p models.Product, options catalog.Options, engine *pricing.Engine) (*Session, error) {
	s := &Session{
		state:        StateEditing,
		product:      p,
		options:      options,
		engine:       engine,
		materialType: options.Default(models.OptionMaterial).ID,
		colorFinish:  options.Default(models.OptionFinish).ID,
		glassPanel:   options.Default(models.OptionGlass).ID,
		dims:         models.StandardDimensions(),
		editIndex:    NoEditIndex,
	}
	if err := s.recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

// Resume seeds a session from a prior record for re-editing the cart
// line at editIndex. Committing replaces that line; cancelling leaves it
// untouched.
func Resume(p models.Product, prior models.ProductCustomization, editIndex int, options catalog.Options, engine *pricing.Engine) (*Session, error) {
	s := &Session{
		state:        StateEditing,
		product:      p,
		options:      options,
		engine:       engine,
		materialType: prior.MaterialType,
		colorFinish:  prior.ColorFinish,
		glassPanel:   prior.GlassPanel,
		dims:         prior.Dimensions,
		editIndex:    editIndex,
	}
	if err := s.recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) State() State        { return s.state }
func (s *Session) TotalPrice() float64 { return s.total }
func (s *Session) EditIndex() int      { return s.editIndex }

func (s *Session) SelectOption(kind models.OptionKind, optionID string) error {
	if s.state != StateEditing {
		return ErrClosed
	}

	var field *string
	switch kind {
	case models.OptionMaterial:
		field = &s.materialType
	case models.OptionFinish:
		field = &s.colorFinish
	case models.OptionGlass:
		field = &s.glassPanel
	default:
		return fmt.Errorf("session: unknown option kind %q", kind)
	}

	prev := *field
	*field = optionID
	if err := s.recompute(); err != nil {
		*field = prev
		_ = s.recompute()
		return err
	}
	return nil
}

func (s *Session) SetCustomSize(on bool) error {
	if s.state != StateEditing {
		return ErrClosed
	}
	s.dims.IsCustom = on
	return s.recompute()
}

// SetWidth clamps to the advisory custom range rather than rejecting;
// the bounds are a UI convention, not a hard invariant.
func (s *Session) SetWidth(w float64) error {
	if s.state != StateEditing {
		return ErrClosed
	}
	if !s.dims.IsCustom {
		return ErrStandardSize
	}
	s.dims.Width = clamp(w, models.MinCustomWidth, models.MaxCustomWidth)
	return s.recompute()
}

func (s *Session) SetHeight(h float64) error {
	if s.state != StateEditing {
		return ErrClosed
	}
	if !s.dims.IsCustom {
		return ErrStandardSize
	}
	s.dims.Height = clamp(h, models.MinCustomHeight, models.MaxCustomHeight)
	return s.recompute()
}

// CommitToCart finalizes the session into the cart: appended, or
// replacing the edited line when the session was opened with Resume.
func (s *Session) CommitToCart(store *cart.Store) (models.ProductCustomization, error) {
	if s.state != StateEditing {
		return models.ProductCustomization{}, ErrClosed
	}

	rec := s.record()
	if s.editIndex == NoEditIndex {
		store.Add(rec)
	} else if err := store.ReplaceAt(s.editIndex, rec); err != nil {
		return models.ProductCustomization{}, err
	}
	s.state = StateCommitted
	return rec, nil
}

// CommitToQuote finalizes the session for a single-item quote request,
// bypassing the cart.
func (s *Session) CommitToQuote() (models.ProductCustomization, error) {
	if s.state != StateEditing {
		return models.ProductCustomization{}, ErrClosed
	}
	rec := s.record()
	s.state = StateCommitted
	return rec, nil
}

// Cancel discards in-progress selections. An edited cart line is left
// untouched.
func (s *Session) Cancel() error {
	if s.state != StateEditing {
		return ErrClosed
	}
	s.state = StateCancelled
	return nil
}

func (s *Session) record() models.ProductCustomization {
	return models.ProductCustomization{
		ProductID:    s.product.ID,
		ProductName:  s.product.Name,
		MaterialType: s.materialType,
		ColorFinish:  s.colorFinish,
		GlassPanel:   s.glassPanel,
		Dimensions:   s.dims,
		TotalPrice:   s.total,
	}
}

func (s *Session) recompute() error {
	total, err := s.engine.ComputeTotal(s.product.Price, s.materialType, s.colorFinish, s.glassPanel, s.dims.IsCustom)
	if err != nil {
		return err
	}
	s.total = total
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
