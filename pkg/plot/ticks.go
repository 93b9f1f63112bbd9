// Package plot computes nice-rounded axis tick values for 2D coordinate
// overlays. It is independent of the 3D packages; drawing the resulting
// lines and labels belongs to the consumer.
package plot

import (
	"fmt"
	"math"
)

// Tick is one labeled axis position.
type Tick struct {
	Value float64
	Label string
	Major bool
}

// TickInfo describes a rounded axis range and its ticks.
type TickInfo struct {
	NiceMin    float64
	NiceMax    float64
	Spacing    float64
	Decimals   int
	Scientific bool
	Ticks      []Tick
}

// niceNumbers are the human-friendly spacing mantissas, in snap order.
var niceNumbers = []float64{1, 2, 2.5, 5, 10}

// fallbackRange replaces non-finite axis bounds so an overlay always has
// something to draw.
const fallbackRange = 10.0

// CalculateTicks maps a data range onto rounded tick values: the spacing is
// the smallest member of {1, 2, 2.5, 5, 10} times a power of ten that keeps
// roughly targetCount ticks, and the range is widened to multiples of that
// spacing. Non-finite bounds fall back to [-10, 10]; a degenerate range is
// padded by 10% of its magnitude (or 1.0 around zero) before rounding.
func CalculateTicks(dataMin, dataMax float64, targetCount int) TickInfo {
	if math.IsNaN(dataMin) || math.IsInf(dataMin, 0) ||
		math.IsNaN(dataMax) || math.IsInf(dataMax, 0) {
		dataMin, dataMax = -fallbackRange, fallbackRange
	}
	if dataMin > dataMax {
		dataMin, dataMax = dataMax, dataMin
	}
	if targetCount < 2 {
		targetCount = 2
	}

	if dataMax-dataMin <= math.Abs(dataMax)*1e-15 {
		pad := math.Abs(dataMax) * 0.1
		if pad == 0 {
			pad = 1.0
		}
		dataMin -= pad
		dataMax += pad
	}

	roughSpacing := (dataMax - dataMin) / float64(targetCount-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(roughSpacing)))
	normalized := roughSpacing / magnitude

	nice := niceNumbers[len(niceNumbers)-1]
	for _, n := range niceNumbers {
		if n >= normalized {
			nice = n
			break
		}
	}
	spacing := nice * magnitude

	info := TickInfo{
		NiceMin: math.Floor(dataMin/spacing) * spacing,
		NiceMax: math.Ceil(dataMax/spacing) * spacing,
		Spacing: spacing,
	}

	if spacing < 1 {
		info.Decimals = int(math.Ceil(-math.Log10(spacing)))
		if info.Decimals > 10 {
			info.Decimals = 10
		}
	}

	largest := math.Max(math.Abs(info.NiceMin), math.Abs(info.NiceMax))
	info.Scientific = largest >= 1e5 || (largest > 0 && largest < 0.01)

	for v := info.NiceMin; v <= info.NiceMax+spacing*1e-10; v += spacing {
		value := v
		if math.Abs(value) < spacing*1e-10 {
			value = 0
		}
		info.Ticks = append(info.Ticks, Tick{
			Value: value,
			Label: info.formatLabel(value),
			Major: true,
		})
	}

	return info
}

// formatLabel renders a tick value per the decimal and scientific rules.
func (ti TickInfo) formatLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	if ti.Scientific {
		return fmt.Sprintf("%.2e", v)
	}
	return fmt.Sprintf("%.*f", ti.Decimals, v)
}
