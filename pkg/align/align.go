// Package align computes how the displayed surface is centred inside the
// physical viewport.
//
// When the displayed surface overflows the viewport (offset <= 0) the engine
// centres it itself by displacing its top/left edge. When the surface is
// smaller than the viewport (letterbox or pillarbox) centring is delegated to
// the host's native page alignment.
package align

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/screenfit/pkg/canvas"
	"github.com/matzehuels/screenfit/pkg/geom"
)

// Offset is the alignment result for one pass.
type Offset struct {
	// Raw is floor((view - style) / 2) per axis.
	Raw geom.Vec `json:"raw"`
	// Left and Top are the displacement applied to the surface. They are
	// non-zero only for overflowing axes whose alignment flag is on.
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
	// NativeH and NativeV ask the host to centre a smaller-than-viewport
	// surface along that axis.
	NativeH bool `json:"native_h"`
	NativeV bool `json:"native_v"`
}

// Compute derives the alignment for a surface of displayed size style in a
// viewport of size view.
func Compute(view geom.Vec, style geom.Size, alignH, alignV bool) Offset {
	raw := geom.Vec{
		X: math.Floor((view.X - style.Width) / 2),
		Y: math.Floor((view.Y - style.Height) / 2),
	}
	o := Offset{Raw: raw}

	if raw.X <= 0 {
		if alignH {
			o.Left = raw.X
		}
	} else {
		o.NativeH = alignH
	}

	if raw.Y <= 0 {
		if alignV {
			o.Top = raw.Y
		}
	} else {
		o.NativeV = alignV
	}

	return o
}

// Screen returns the effective displacement of the surface on screen,
// including the centring the host performs natively for letterboxed axes.
func (o Offset) Screen() geom.Vec {
	v := geom.Vec{X: o.Left, Y: o.Top}
	if o.NativeH {
		v.X = o.Raw.X
	}
	if o.NativeV {
		v.Y = o.Raw.Y
	}
	return v
}

// Style renders the style string applied to the backing surface element.
func (o Offset) Style(g canvas.Geometry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "width:%spx;height:%spx", px(g.StyleWidth), px(g.StyleHeight))
	if o.Left != 0 {
		fmt.Fprintf(&b, ";margin-left:%spx", px(o.Left))
	}
	if o.Top != 0 {
		fmt.Fprintf(&b, ";margin-top:%spx", px(o.Top))
	}
	return b.String()
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
