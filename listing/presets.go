package listing

import "math"

// Preset is a quick price-range shortcut defined as a fixed fraction of
// the catalog's observed effective-price span.
type Preset string

const (
	PresetBudget   Preset = "budget"   // 0-30% of the span
	PresetMidRange Preset = "midrange" // 30-70%
	PresetPremium  Preset = "premium"  // 70-100%
	PresetOnSale   Preset = "sale"     // 0-50%
)

func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetBudget, PresetMidRange, PresetPremium, PresetOnSale:
		return Preset(s), true
	}
	return "", false
}

// PresetBounds combines the active presets by union: min of mins, max of
// maxes. No presets means the full span.
func PresetBounds(presets []Preset, spanMin, spanMax float64) (float64, float64) {
	if len(presets) == 0 {
		return spanMin, spanMax
	}

	span := spanMax - spanMin
	min, max := math.Inf(1), math.Inf(-1)
	for _, p := range presets {
		var lo, hi float64
		switch p {
		case PresetBudget:
			lo, hi = spanMin, spanMin+span*0.3
		case PresetMidRange:
			lo, hi = spanMin+span*0.3, spanMin+span*0.7
		case PresetPremium:
			lo, hi = spanMin+span*0.7, spanMax
		case PresetOnSale:
			lo, hi = spanMin, spanMin+span*0.5
		default:
			continue
		}
		min = math.Min(min, lo)
		max = math.Max(max, hi)
	}
	if math.IsInf(min, 1) {
		return spanMin, spanMax
	}
	return min, max
}

// ResolveBounds picks the effective price window for a query: presets
// win when present, otherwise explicit bounds, otherwise the full span.
func ResolveBounds(minQ, maxQ *float64, presets []Preset, spanMin, spanMax float64) (float64, float64) {
	if len(presets) > 0 {
		return PresetBounds(presets, spanMin, spanMax)
	}
	min, max := spanMin, spanMax
	if minQ != nil {
		min = *minQ
	}
	if maxQ != nil {
		max = *maxQ
	}
	return min, max
}
