package stage

import "github.com/matzehuels/screenfit/pkg/geom"

// RotationAngle is the content rotation, in degrees, applied under forced
// rotation.
const RotationAngle = -90.0

// Transform is the stage state for one pass.
type Transform struct {
	// Angle is the content rotation in degrees (0 or RotationAngle).
	Angle float64 `json:"angle"`
	// Pivot is the content's rotation origin in buffer space.
	Pivot geom.Vec `json:"pivot"`
	// WorldBounds is the renderable content rectangle as configured.
	WorldBounds geom.Rect `json:"world_bounds"`
	// CameraBounds is the visible window rectangle, remapped so it tracks the
	// rotated content.
	CameraBounds geom.Rect `json:"camera_bounds"`
}

// Rotate derives the stage transform. actualHeight is the backing buffer
// height in buffer space.
func Rotate(bounds geom.Rect, actualHeight float64, forceRotate bool) Transform {
	if !forceRotate {
		return Transform{WorldBounds: bounds, CameraBounds: bounds}
	}
	return Transform{
		Angle:       RotationAngle,
		Pivot:       geom.Vec{X: actualHeight},
		WorldBounds: bounds,
		CameraBounds: geom.Rect{
			X:      bounds.X,
			Y:      bounds.Y - bounds.Width + actualHeight,
			Width:  bounds.Height,
			Height: bounds.Width,
		},
	}
}

// Rotated reports whether the transform carries a compensating rotation.
func (t Transform) Rotated() bool { return t.Angle != 0 }

// Matrix returns the content to buffer transform: translate by -Pivot, then
// rotate by Angle.
func (t Transform) Matrix() geom.Matrix {
	return geom.Rotate(t.Angle).Multiply(geom.Translate(-t.Pivot.X, -t.Pivot.Y))
}
