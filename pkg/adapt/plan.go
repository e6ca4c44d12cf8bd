package adapt

import (
	"github.com/matzehuels/screenfit/pkg/align"
	"github.com/matzehuels/screenfit/pkg/canvas"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/orient"
	"github.com/matzehuels/screenfit/pkg/scale"
	"github.com/matzehuels/screenfit/pkg/stage"
	"github.com/matzehuels/screenfit/pkg/widget"
)

// Design is the resolved design size for one pass.
type Design struct {
	// Width and Height are in the presentation orientation.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// X and Y are in buffer space: Width and Height swapped under forced
	// rotation.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec returns the design in buffer space.
func (d Design) Vec() geom.Vec { return geom.Vec{X: d.X, Y: d.Y} }

// Snapshot is the immutable result of one adaptation pass.
type Snapshot struct {
	Screen      geom.Size          `json:"screen"`
	Orientation orient.Orientation `json:"orientation"`
	ScreenMode  orient.Orientation `json:"screen_mode"`
	ForceRotate bool               `json:"force_rotate"`
	ScaleMode   scale.Mode         `json:"scale_mode"`
	View        geom.Vec           `json:"view"`
	Design      Design             `json:"design"`
	Ratio       geom.Vec           `json:"ratio"`
	Canvas      canvas.Geometry    `json:"canvas"`
	Logical     geom.Size          `json:"logical"`
	Stage       stage.Transform    `json:"stage"`
	Align       align.Offset       `json:"align"`
	Margins     widget.Margins     `json:"margins"`
	Style       string             `json:"style"`

	pin stage.PinFunc
}

// Pin maps a pinned element's viewport position to stage coordinates using
// the pass's pin function.
func (s Snapshot) Pin(viewport, offset, scale geom.Vec) geom.Vec {
	if s.pin == nil {
		return stage.NewPinFunc(s.ForceRotate)(viewport, offset, scale)
	}
	return s.pin(viewport, offset, scale)
}

// BufferMatrix returns the backing buffer to viewport pixel transform: the
// display ratio, then the on-screen offset.
func (s Snapshot) BufferMatrix() geom.Matrix {
	off := s.Align.Screen()
	return geom.Translate(off.X, off.Y).Multiply(geom.Scale(s.Ratio.X, s.Ratio.Y))
}

// ScreenMatrix returns the logical content to viewport pixel transform: the
// stage transform followed by BufferMatrix. Camera scrolling is not included.
func (s Snapshot) ScreenMatrix() geom.Matrix {
	return s.BufferMatrix().Multiply(s.Stage.Matrix())
}

// ContentToScreen maps a point in logical content coordinates to viewport
// pixels.
func (s Snapshot) ContentToScreen(p geom.Vec) geom.Vec {
	return s.ScreenMatrix().Apply(p)
}

// Plan runs the pure part of an adaptation pass for a screenW×screenH
// viewport. The configuration is normalized first, so Plan reports the same
// configuration errors as [Controller.Set].
func Plan(cfg Config, screenW, screenH float64) (Snapshot, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return Snapshot{}, err
	}
	if err := errors.ValidateViewport(screenW, screenH); err != nil {
		return Snapshot{}, err
	}
	if screenW == 0 || screenH == 0 {
		return Snapshot{}, errors.New(errors.ErrCodeInvalidViewport, "viewport %vx%v is degenerate", screenW, screenH)
	}

	det := orient.Detect(screenW, screenH)
	force := orient.ForceRotate(det.Orientation, cfg.ScreenMode)

	design, err := resolveDesign(cfg, det.View, force)
	if err != nil {
		return Snapshot{}, err
	}

	ratio, err := scale.Resolve(force, cfg.ScaleMode, design.Vec(), det.View)
	if err != nil {
		return Snapshot{}, err
	}

	g := canvas.Compute(ratio, design.Vec(), det.View, force, cfg.ScaleMode)
	off := align.Compute(det.View, g.Style(), cfg.AlignH, cfg.AlignV)

	return Snapshot{
		Screen:      geom.Size{Width: screenW, Height: screenH},
		Orientation: det.Orientation,
		ScreenMode:  cfg.ScreenMode,
		ForceRotate: force,
		ScaleMode:   cfg.ScaleMode,
		View:        det.View,
		Design:      design,
		Ratio:       ratio,
		Canvas:      g,
		Logical:     g.Logical(force),
		Stage:       stage.Rotate(cfg.WorldBounds, g.ActualHeight, force),
		Align:       off,
		Margins:     widget.ComputeMargins(g.Style(), det.View, ratio, force, cfg.AlignH, cfg.AlignV),
		Style:       off.Style(g),
		pin:         stage.NewPinFunc(force),
	}, nil
}

// resolveDesign fills in automatic extents with twice the viewport extent in
// the presentation orientation, then swaps into buffer space.
func resolveDesign(cfg Config, view geom.Vec, force bool) (Design, error) {
	present := view
	if force {
		present = view.Swap()
	}

	d := Design{Width: float64(cfg.DesignWidth), Height: float64(cfg.DesignHeight)}
	if cfg.DesignWidth.IsAuto() {
		d.Width = 2 * present.X
	}
	if cfg.DesignHeight.IsAuto() {
		d.Height = 2 * present.Y
	}
	if err := errors.ValidateDimension(errors.ErrCodeInvalidDesignSize, "design width", d.Width); err != nil {
		return Design{}, err
	}
	if err := errors.ValidateDimension(errors.ErrCodeInvalidDesignSize, "design height", d.Height); err != nil {
		return Design{}, err
	}

	d.X, d.Y = d.Width, d.Height
	if force {
		d.X, d.Y = d.Height, d.Width
	}
	return d, nil
}
