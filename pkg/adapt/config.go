package adapt

import (
	"math"

	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/orient"
	"github.com/matzehuels/screenfit/pkg/scale"
)

// Config is the adaptation configuration. Zero fields take defaults:
// automatic design size, zero world bounds, SHOW_ALL, portrait, no
// alignment, and no orientation callback.
type Config struct {
	// DesignWidth and DesignHeight are the authored content size in the
	// presentation orientation.
	DesignWidth  Length
	DesignHeight Length

	// WorldBounds is the renderable content rectangle handed to the stage.
	WorldBounds geom.Rect

	ScaleMode  scale.Mode
	ScreenMode orient.Orientation

	// AlignH and AlignV centre the surface along each axis.
	AlignH bool
	AlignV bool

	// OnOrientationChange runs after every committed resize pass with the
	// measured orientation.
	OnOrientationChange func(orient.Orientation)
}

// Normalize validates c and fills in defaults.
func (c Config) Normalize() (Config, error) {
	if c.ScaleMode == "" {
		c.ScaleMode = scale.ShowAll
	}
	if c.ScreenMode == "" {
		c.ScreenMode = orient.Portrait
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// AutoDesign reports whether either design extent is derived from the viewport.
func (c Config) AutoDesign() bool {
	return c.DesignWidth.IsAuto() || c.DesignHeight.IsAuto()
}

func (c Config) validate() error {
	if err := c.DesignWidth.Validate("design width"); err != nil {
		return err
	}
	if err := c.DesignHeight.Validate("design height"); err != nil {
		return err
	}
	if !c.ScaleMode.Valid() {
		return errors.New(errors.ErrCodeInvalidScaleMode, "unknown scale mode %q", c.ScaleMode)
	}
	if !c.ScreenMode.Valid() {
		return errors.New(errors.ErrCodeInvalidScreenMode, "unknown screen mode %q", c.ScreenMode)
	}
	b := c.WorldBounds
	for _, v := range [4]float64{b.X, b.Y, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "world bounds %+v are not finite", b)
		}
	}
	if b.Width < 0 || b.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "world bounds %vx%v must not be negative", b.Width, b.Height)
	}
	return nil
}
