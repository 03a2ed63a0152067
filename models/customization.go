package models

type OptionKind string

const (
	OptionMaterial OptionKind = "material"
	OptionFinish   OptionKind = "finish"
	OptionGlass    OptionKind = "glass"
)

type CustomizationOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PriceModifier float64 `json:"priceModifier"`
	Thumbnail     string  `json:"thumbnail,omitempty"`
}

// Dimensions in inches. Standard size is 36x80; custom sizes follow the
// advisory ranges 24-48 wide, 72-96 high.
type Dimensions struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	IsCustom bool    `json:"isCustom"`
}

const (
	StandardWidth  = 36
	StandardHeight = 80

	MinCustomWidth  = 24
	MaxCustomWidth  = 48
	MinCustomHeight = 72
	MaxCustomHeight = 96
)

func StandardDimensions() Dimensions {
	return Dimensions{Width: StandardWidth, Height: StandardHeight}
}

// ProductCustomization is a finalized configurator result. Records are
// immutable once committed; editing a cart line produces a new record
// that replaces the old one at the same index.
type ProductCustomization struct {
	ProductID    string     `json:"productId"`
	ProductName  string     `json:"productName"`
	MaterialType string     `json:"materialType"`
	ColorFinish  string     `json:"colorFinish"`
	GlassPanel   string     `json:"glassPanel"`
	Dimensions   Dimensions `json:"dimensions"`
	TotalPrice   float64    `json:"totalPrice"`
}
