package widget

import (
	"math"

	"github.com/matzehuels/screenfit/pkg/geom"
)

// Margins is the overflow, in design pixels, distributed to each canvas edge.
type Margins struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ComputeMargins converts the part of the displayed surface that overflows
// the viewport back into design pixels and distributes it to the canvas
// edges. Gaps (surface smaller than viewport) never produce margins.
//
// The horizontal screen overflow is gated by alignH and the vertical by
// alignV: with the flag on it is split evenly between opposing edges, with
// the flag off it all goes to the near (left/top) edge. Under forced
// rotation screen axes are swapped relative to design axes, so horizontal
// overflow lands on top/bottom and vertical overflow on left/right.
func ComputeMargins(style geom.Size, view, ratio geom.Vec, forceRotate, alignH, alignV bool) Margins {
	rawX := math.Max(0, math.Floor((style.Width-view.X)/ratio.X))
	rawY := math.Max(0, math.Floor((style.Height-view.Y)/ratio.Y))

	nearX, farX := split(rawX, alignH)
	nearY, farY := split(rawY, alignV)

	if forceRotate {
		return Margins{Top: nearX, Bottom: farX, Left: nearY, Right: farY}
	}
	return Margins{Left: nearX, Right: farX, Top: nearY, Bottom: farY}
}

func split(v float64, centred bool) (near, far float64) {
	if centred {
		return v / 2, v / 2
	}
	return v, 0
}
