// Package orient detects the physical orientation of a viewport and derives
// whether content must be force-rotated to honour the desired screen mode.
package orient

import (
	"strings"

	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
)

// Orientation is either Portrait or Landscape. It is used both for the
// measured device orientation and for the desired presentation (screen mode).
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// String returns the orientation name passed to resize callbacks.
func (o Orientation) String() string { return string(o) }

// Valid reports whether o is one of the two known orientations.
func (o Orientation) Valid() bool { return o == Portrait || o == Landscape }

// ParseOrientation parses a screen mode name. Matching is case-insensitive;
// the empty string yields Portrait.
func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return Portrait, nil
	case Portrait, Landscape:
		return o, nil
	}
	return "", errors.New(errors.ErrCodeInvalidScreenMode, "unknown screen mode %q (want portrait or landscape)", s)
}

// Detection is the result of measuring a viewport.
type Detection struct {
	Orientation Orientation
	// View is the physical viewport extent with X along the measured
	// horizontal axis.
	View geom.Vec
}

// IsPortrait reports whether the measured orientation is portrait.
func (d Detection) IsPortrait() bool { return d.Orientation == Portrait }

// Detect measures a w×h viewport. Viewports at least as tall as they are
// wide are portrait. Zero extents pass through unchanged.
func Detect(w, h float64) Detection {
	if h >= w {
		return Detection{Orientation: Portrait, View: geom.Vec{X: min(w, h), Y: max(w, h)}}
	}
	return Detection{Orientation: Landscape, View: geom.Vec{X: max(w, h), Y: min(w, h)}}
}

// ForceRotate reports whether content authored for the desired screen mode
// must be rotated a quarter turn to appear upright on a device measured in
// the given orientation.
func ForceRotate(measured, desired Orientation) bool {
	return measured != desired
}
