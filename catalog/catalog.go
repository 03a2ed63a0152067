// Package catalog holds the read-only product and customization-option
// repositories. The shipped data is compiled in; the interfaces exist so
// tests and tools can inject synthetic catalogs.
package catalog

import "github.com/woodendoors/doorshowcase/models"

type Products interface {
	List() []models.Product
	ByID(id string) (models.Product, bool)
}

type Options interface {
	List(kind models.OptionKind) []models.CustomizationOption
	ByID(kind models.OptionKind, id string) (models.CustomizationOption, bool)
	// Default is the first option of the catalog, the configurator's
	// initial selection.
	Default(kind models.OptionKind) models.CustomizationOption
}

type staticProducts struct {
	items []models.Product
	byID  map[string]models.Product
}

func NewProducts(items []models.Product) Products {
	byID := make(map[string]models.Product, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	return &staticProducts{items: items, byID: byID}
}

func (s *staticProducts) List() []models.Product {
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *staticProducts) ByID(id string) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

type staticOptions struct {
	lists map[models.OptionKind][]models.CustomizationOption
}

func NewOptions(lists map[models.OptionKind][]models.CustomizationOption) Options {
	return &staticOptions{lists: lists}
}

func (s *staticOptions) List(kind models.OptionKind) []models.CustomizationOption {
	src := s.lists[kind]
	out := make([]models.CustomizationOption, len(src))
	copy(out, src)
	return out
}

func (s *staticOptions) ByID(kind models.OptionKind, id string) (models.CustomizationOption, bool) {
	for _, o := range s.lists[kind] {
		if o.ID == id {
			return o, true
		}
	}
	return models.CustomizationOption{}, false
}

func (s *staticOptions) Default(kind models.OptionKind) models.CustomizationOption {
	list := s.lists[kind]
	if len(list) == 0 {
		return models.CustomizationOption{}
	}
	return list[0]
}

// DefaultProducts returns the shipped door catalog.
func DefaultProducts() Products {
	return NewProducts(seedProducts)
}

// DefaultOptions returns the shipped material, finish and glass catalogs.
func DefaultOptions() Options {
	return NewOptions(map[models.OptionKind][]models.CustomizationOption{
		models.OptionMaterial: materialOptions,
		models.OptionFinish:   finishOptions,
		models.OptionGlass:    glassOptions,
	})
}
