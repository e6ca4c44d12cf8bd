package widget

import "github.com/matzehuels/screenfit/pkg/geom"

// Box is a named rectangle implementing both Positionable and Resizable.
type Box struct {
	Name  string
	pos   geom.Vec
	pivot geom.Vec
	size  geom.Size
}

// NewBox returns a w×h box at the origin with a top-left pivot.
func NewBox(name string, w, h float64) *Box {
	return &Box{Name: name, size: geom.Size{Width: w, Height: h}}
}

func (b *Box) Position() geom.Vec     { return b.pos }
func (b *Box) SetPosition(p geom.Vec) { b.pos = p }
func (b *Box) Pivot() geom.Vec        { return b.pivot }
func (b *Box) SetPivot(p geom.Vec)    { b.pivot = p }
func (b *Box) Size() geom.Size        { return b.size }
func (b *Box) SetSize(s geom.Size)    { b.size = s }
func (b *Box) SetRect(r geom.Rect)    { b.pos, b.pivot, b.size = r.Origin(), geom.Vec{}, r.Size() }

// Rect returns the box's bounds with the pivot taken into account.
func (b *Box) Rect() geom.Rect {
	return geom.Rect{
		X:      b.pos.X - b.pivot.X*b.size.Width,
		Y:      b.pos.Y - b.pivot.Y*b.size.Height,
		Width:  b.size.Width,
		Height: b.size.Height,
	}
}
