package dto

type DimensionsDTO struct {
	Width    float64 `json:"width" binding:"omitempty,gt=0"`
	Height   float64 `json:"height" binding:"omitempty,gt=0"`
	IsCustom bool    `json:"isCustom"`
}

// CustomizationInputDTO is a configurator selection. Empty option fields
// keep the catalog defaults; a nil Dimensions keeps the standard size.
type CustomizationInputDTO struct {
	ProductID    string         `json:"productId" binding:"required"`
	MaterialType string         `json:"materialType"`
	ColorFinish  string         `json:"colorFinish"`
	GlassPanel   string         `json:"glassPanel"`
	Dimensions   *DimensionsDTO `json:"dimensions"`
}
