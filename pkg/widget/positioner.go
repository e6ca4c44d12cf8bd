package widget

import (
	"github.com/google/uuid"

	"github.com/matzehuels/screenfit/pkg/canvas"
	"github.com/matzehuels/screenfit/pkg/geom"
)

// Positionable is any renderable with a positionable origin, a normalized
// pivot and a queryable size.
type Positionable interface {
	Position() geom.Vec
	SetPosition(geom.Vec)
	Pivot() geom.Vec
	SetPivot(geom.Vec)
	Size() geom.Size
}

// Resizable is a shape that can be redrawn to a rectangle.
type Resizable interface {
	SetRect(geom.Rect)
}

// Widget is a registered element and its anchor.
type Widget struct {
	Target Positionable
	Anchor Anchor
}

// Move is the computed placement for one widget.
type Move struct {
	ID        uuid.UUID
	Target    Positionable
	Placement Placement
}

// Apply writes the placement to the target.
func (m Move) Apply() {
	m.Target.SetPivot(m.Placement.Pivot)
	m.Target.SetPosition(m.Placement.Position)
}

// Arrange computes placements for every widget without mutating them.
func Arrange(widgets []Entry[Widget], logical geom.Size, m Margins) []Move {
	moves := make([]Move, 0, len(widgets))
	for _, e := range widgets {
		w := e.Value
		cur := Placement{Position: w.Target.Position(), Pivot: w.Target.Pivot()}
		moves = append(moves, Move{
			ID:        e.ID,
			Target:    w.Target,
			Placement: w.Anchor.Place(cur, w.Target.Size(), logical, m),
		})
	}
	return moves
}

// FitRect is the rectangle full-bleed shapes are resized to: the whole
// backing buffer. Buffer space rather than display space keeps shapes crisp
// because the stage's own display transform scales them.
func FitRect(g canvas.Geometry) geom.Rect {
	return geom.RectFromSize(g.Actual())
}

// Fit resizes every target to FitRect(g).
func Fit(targets []Entry[Resizable], g canvas.Geometry) {
	r := FitRect(g)
	for _, e := range targets {
		e.Value.SetRect(r)
	}
}
