// Package pricing computes configurator totals from a base price and the
// selected customization options.
package pricing

import (
	"errors"
	"fmt"

	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/models"
)

// CustomSizeSurcharge is applied to the sum of base price and option
// modifiers, not to the base price alone.
const CustomSizeSurcharge = 0.15

// ErrUnknownOption is returned in strict mode when a selection does not
// resolve against the option catalog. In the default mode an unknown id
// contributes a zero modifier instead.
var ErrUnknownOption = errors.New("unknown customization option")

type Engine struct {
	options catalog.Options
	strict  bool
}

func NewEngine(options catalog.Options, strict bool) *Engine {
	return &Engine{options: options, strict: strict}
}

// ComputeTotal is pure: no rounding is applied, display layers round for
// presentation only.
func (e *Engine) ComputeTotal(basePrice float64, materialID, finishID, glassID string, customSize bool) (float64, error) {
	total := basePrice

	for _, sel := range []struct {
		kind models.OptionKind
		id   string
	}{
		{models.OptionMaterial, materialID},
		{models.OptionFinish, finishID},
		{models.OptionGlass, glassID},
	} {
		opt, ok := e.options.ByID(sel.kind, sel.id)
		if !ok {
			if e.strict {
				return 0, fmt.Errorf("%w: %s %q", ErrUnknownOption, sel.kind, sel.id)
			}
			continue
		}
		total += opt.PriceModifier
	}

	if customSize {
		total += total * CustomSizeSurcharge
	}
	return total, nil
}
