package widget

import (
	"math"

	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
)

// Anchor describes where an element sits relative to the logical canvas
// edges. Offsets are in design pixels; nil means "not anchored to this edge".
//
// Keys are independent and all applied in the order Right, Bottom, Left,
// Top, HorizontalCenter, VerticalCenter, so with conflicting keys (both Left
// and Right, say) the later one wins.
type Anchor struct {
	Top              *float64 `json:"top,omitempty" toml:"top" yaml:"top,omitempty"`
	Left             *float64 `json:"left,omitempty" toml:"left" yaml:"left,omitempty"`
	Right            *float64 `json:"right,omitempty" toml:"right" yaml:"right,omitempty"`
	Bottom           *float64 `json:"bottom,omitempty" toml:"bottom" yaml:"bottom,omitempty"`
	HorizontalCenter bool     `json:"horizontal_center,omitempty" toml:"horizontal_center" yaml:"horizontal_center,omitempty"`
	VerticalCenter   bool     `json:"vertical_center,omitempty" toml:"vertical_center" yaml:"vertical_center,omitempty"`
}

// Px returns a pointer to v for use in Anchor literals.
func Px(v float64) *float64 { return &v }

// Validate rejects non-finite offsets.
func (a Anchor) Validate() error {
	for name, v := range map[string]*float64{"top": a.Top, "left": a.Left, "right": a.Right, "bottom": a.Bottom} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return errors.New(errors.ErrCodeInvalidArgument, "anchor %s must be finite, got %v", name, *v)
		}
	}
	return nil
}

// Placement is an element's position and normalized pivot.
type Placement struct {
	Position geom.Vec `json:"position"`
	Pivot    geom.Vec `json:"pivot"`
}

// Place resolves the anchor for an element of size obj on a canvas of the
// given logical size. Axes the anchor does not touch keep their value from
// cur.
func (a Anchor) Place(cur Placement, obj, canvas geom.Size, m Margins) Placement {
	p := cur
	if a.Right != nil {
		p.Position.X = canvas.Width - (m.Right + *a.Right + obj.Width)
	}
	if a.Bottom != nil {
		p.Position.Y = canvas.Height - (m.Bottom + *a.Bottom + obj.Height)
	}
	if a.Left != nil {
		p.Position.X = m.Left + *a.Left
	}
	if a.Top != nil {
		p.Position.Y = m.Top + *a.Top
	}
	if a.HorizontalCenter {
		p.Pivot.X = 0.5
		p.Position.X = math.Floor(canvas.Width / 2)
	}
	if a.VerticalCenter {
		p.Pivot.Y = 0.5
		p.Position.Y = math.Floor(canvas.Height / 2)
	}
	return p
}
