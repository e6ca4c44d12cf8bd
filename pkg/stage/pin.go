package stage

import "github.com/matzehuels/screenfit/pkg/geom"

// PinFunc maps the position of a viewport-pinned element to screen space.
// viewport is the camera/viewport position, offset the element's pinned
// offset and scale the camera scale.
type PinFunc func(viewport, offset, scale geom.Vec) geom.Vec

// NewPinFunc returns the pin transform for the given rotation state. Under
// forced rotation the viewport offset is inverse-rotated so pinned elements
// stay upright and fixed on screen.
func NewPinFunc(forceRotate bool) PinFunc {
	if forceRotate {
		return pinRotated
	}
	return pinDirect
}

func pinDirect(viewport, offset, scale geom.Vec) geom.Vec {
	return geom.Vec{
		X: (viewport.X + offset.X) / scale.X,
		Y: (viewport.Y + offset.Y) / scale.Y,
	}
}

func pinRotated(viewport, offset, scale geom.Vec) geom.Vec {
	return geom.Vec{
		X: (-viewport.Y + offset.X) / scale.X,
		Y: (viewport.X + offset.Y) / scale.Y,
	}
}
