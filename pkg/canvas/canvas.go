// Package canvas derives the backing buffer resolution and the on-screen
// display size of the rendering surface from a resolved scale ratio.
package canvas

import (
	"math"

	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/scale"
)

// Geometry describes the surface for one adaptation pass.
//
// Actual* is the backing buffer resolution in buffer space (axes already
// swapped for forced rotation). Style* is the displayed size,
// floor(Actual* × ratio).
type Geometry struct {
	ActualWidth  float64 `json:"actual_width"`
	ActualHeight float64 `json:"actual_height"`
	StyleWidth   float64 `json:"style_width"`
	StyleHeight  float64 `json:"style_height"`
}

// Compute sizes the surface.
//
// For the fixed policies one buffer axis equals the design value while the
// other is derived from the viewport so the displayed surface fills it along
// that axis. For the remaining policies the buffer is exactly the design size
// and all fitting happens through the display ratio.
func Compute(ratio, design, view geom.Vec, forceRotate bool, mode scale.Mode) Geometry {
	w, h := design.X, design.Y

	switch mode {
	case scale.FixedWidth:
		if forceRotate {
			w = math.Floor(view.X / ratio.X)
		} else {
			h = math.Floor(view.Y / ratio.Y)
		}
	case scale.FixedHeight:
		if forceRotate {
			h = math.Floor(view.Y / ratio.Y)
		} else {
			w = math.Floor(view.X / ratio.X)
		}
	}

	return Geometry{
		ActualWidth:  w,
		ActualHeight: h,
		StyleWidth:   math.Floor(w * ratio.X),
		StyleHeight:  math.Floor(h * ratio.Y),
	}
}

// Actual returns the backing buffer size.
func (g Geometry) Actual() geom.Size {
	return geom.Size{Width: g.ActualWidth, Height: g.ActualHeight}
}

// Style returns the displayed size.
func (g Geometry) Style() geom.Size {
	return geom.Size{Width: g.StyleWidth, Height: g.StyleHeight}
}

// Logical returns the size application code should treat as the surface
// size: the buffer with axes swapped back when forced rotation is active,
// so the rotation is invisible to callers.
func (g Geometry) Logical(forceRotate bool) geom.Size {
	if forceRotate {
		return g.Actual().Swap()
	}
	return g.Actual()
}
