// Package scale resolves the per-axis scale ratio that maps one backing
// buffer pixel to one displayed pixel under each scaling policy.
package scale

import (
	"math"
	"strings"

	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
)

// Mode is a scaling policy.
type Mode string

const (
	// ShowAll scales uniformly so the whole design is visible, letterboxing
	// the remainder of the viewport.
	ShowAll Mode = "SHOW_ALL"
	// ExactFit stretches each axis independently to fill the viewport.
	ExactFit Mode = "EXACT_FIT"
	// NoBorder scales uniformly so the viewport is fully covered, cropping
	// design content that overflows.
	NoBorder Mode = "NO_BORDER"
	// FixedWidth locks the scale of the design's width axis and lets the
	// buffer grow or shrink along the other axis.
	FixedWidth Mode = "FIXED_WIDTH"
	// FixedHeight locks the scale of the design's height axis.
	FixedHeight Mode = "FIXED_HEIGHT"
)

// Modes lists every policy in declaration order.
var Modes = []Mode{ShowAll, ExactFit, NoBorder, FixedWidth, FixedHeight}

// Valid reports whether m is a known policy.
func (m Mode) Valid() bool {
	switch m {
	case ShowAll, ExactFit, NoBorder, FixedWidth, FixedHeight:
		return true
	}
	return false
}

// Fixed reports whether m locks one axis (FixedWidth or FixedHeight).
func (m Mode) Fixed() bool { return m == FixedWidth || m == FixedHeight }

// Next returns the policy following m in Modes, wrapping around.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ShowAll
}

// ParseMode parses a policy name. Matching ignores case and accepts '-' in
// place of '_'. The empty string yields ShowAll.
func ParseMode(s string) (Mode, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if norm == "" {
		return ShowAll, nil
	}
	if m := Mode(norm); m.Valid() {
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidScaleMode, "unknown scale mode %q", s)
}

// Resolve computes the scale ratio for fitting content (the design size,
// already axis-swapped for forced rotation) into container (the viewport).
//
// Unknown modes and non-positive extents are rejected so that Inf or NaN
// never reach downstream geometry.
func Resolve(forceRotate bool, mode Mode, content, container geom.Vec) (geom.Vec, error) {
	if !mode.Valid() {
		return geom.Vec{}, errors.New(errors.ErrCodeInvalidScaleMode, "unknown scale mode %q", mode)
	}
	if !content.Positive() {
		return geom.Vec{}, errors.New(errors.ErrCodeInvalidDesignSize, "design %vx%v must be positive", content.X, content.Y)
	}
	if !container.Positive() {
		return geom.Vec{}, errors.New(errors.ErrCodeInvalidViewport, "viewport %vx%v must be positive", container.X, container.Y)
	}

	rx := container.X / content.X
	ry := container.Y / content.Y
	lo, hi := math.Min(rx, ry), math.Max(rx, ry)

	switch mode {
	case ExactFit:
		return geom.Vec{X: rx, Y: ry}, nil
	case NoBorder:
		return geom.Vec{X: hi, Y: hi}, nil
	case FixedWidth:
		r := rx
		if forceRotate {
			r = ry
		}
		return geom.Vec{X: r, Y: r}, nil
	case FixedHeight:
		r := ry
		if forceRotate {
			r = rx
		}
		return geom.Vec{X: r, Y: r}, nil
	default:
		return geom.Vec{X: lo, Y: lo}, nil
	}
}
