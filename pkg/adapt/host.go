package adapt

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/screenfit/pkg/geom"
)

// Screen reports the current viewport size in CSS-style pixels.
type Screen interface {
	ScreenSize() (w, h float64)
}

// ScreenFunc adapts a function to the Screen interface.
type ScreenFunc func() (w, h float64)

// ScreenSize calls f.
func (f ScreenFunc) ScreenSize() (w, h float64) { return f() }

// Stage receives the content transform of each pass.
type Stage interface {
	SetWorldBounds(geom.Rect)
	SetContentRotation(angle float64, pivot geom.Vec)
	SetCameraBounds(geom.Rect)
}

// Surface receives the backing buffer size and display style of each pass.
type Surface interface {
	SetBufferSize(geom.Size)
	ApplyStyle(style string)
	// SetPageAlign asks the host page to centre a surface smaller than the
	// viewport along each axis.
	SetPageAlign(h, v bool)
}

// Pinner maps a pinned element's viewport position to stage coordinates.
// Both *Controller and Snapshot implement it.
type Pinner interface {
	Pin(viewport, offset, scale geom.Vec) geom.Vec
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithScreen sets the viewport source queried by Set.
func WithScreen(s Screen) Option {
	return func(c *Controller) { c.screen = s }
}

// WithStage sets the stage that receives the content transform.
func WithStage(s Stage) Option {
	return func(c *Controller) { c.stage = s }
}

// WithSurface sets the surface that receives buffer size and display style.
func WithSurface(s Surface) Option {
	return func(c *Controller) { c.surface = s }
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
