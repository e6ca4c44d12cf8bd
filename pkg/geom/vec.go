package geom

import "math"

// Vec is a 2D vector or point.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec) Mul(o Vec) Vec { return Vec{v.X * o.X, v.Y * o.Y} }

// Swap returns v with its axes exchanged.
func (v Vec) Swap() Vec { return Vec{v.Y, v.X} }

// IsZero reports whether either component is zero, i.e. the vector
// describes a degenerate extent.
func (v Vec) IsZero() bool { return v.X == 0 || v.Y == 0 }

// Positive reports whether both components are finite and strictly positive.
func (v Vec) Positive() bool { return positive(v.X) && positive(v.Y) }

// Size converts v to a Size.
func (v Vec) Size() Size { return Size{Width: v.X, Height: v.Y} }

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Vec converts s to a Vec.
func (s Size) Vec() Vec { return Vec{s.Width, s.Height} }

// Swap returns s with width and height exchanged.
func (s Size) Swap() Size { return Size{Width: s.Height, Height: s.Width} }
