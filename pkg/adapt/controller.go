package adapt

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/observability"
	"github.com/matzehuels/screenfit/pkg/stage"
	"github.com/matzehuels/screenfit/pkg/widget"
)

// State is the controller lifecycle state.
type State int

const (
	Uninitialized State = iota
	Configured
	Adapting
	Idle
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configured:
		return "configured"
	case Adapting:
		return "adapting"
	case Idle:
		return "idle"
	}
	return "unknown"
}

// ResizeCallback runs after every committed resize pass.
type ResizeCallback func(Snapshot)

const (
	triggerSet    = "set"
	triggerResize = "resize"
)

// Controller coordinates adaptation passes for one surface.
//
// Set and Notify serialize on an internal pass lock. Registration methods
// use a separate lock and are safe to call from resize callbacks.
type Controller struct {
	logger  *log.Logger
	screen  Screen
	stage   Stage
	surface Surface

	passMu sync.Mutex

	mu        sync.Mutex
	state     State
	cfg       Config
	snap      Snapshot
	hasSnap   bool
	last      geom.Size
	widgets   widget.Registry[widget.Widget]
	fits      widget.Registry[widget.Resizable]
	callbacks widget.Registry[ResizeCallback]
}

// New returns an unconfigured controller.
func New(opts ...Option) *Controller {
	c := &Controller{logger: discardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the snapshot of the last committed pass. The boolean is
// false until a pass has committed.
func (c *Controller) Snapshot() (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap, c.hasSnap
}

// Set installs cfg and adapts to the current screen size.
//
// Configuration errors are returned before any state changes. If the screen
// reports a degenerate size, a configuration with an explicit design size is
// kept and the first pass runs on the first non-zero Notify; an automatic
// design cannot be resolved and is rejected.
func (c *Controller) Set(cfg Config) error {
	c.passMu.Lock()
	defer c.passMu.Unlock()

	cfg, err := cfg.Normalize()
	if err != nil {
		c.logger.Errorf("Rejected configuration: %v", err)
		return err
	}

	var w, h float64
	if c.screen != nil {
		w, h = c.screen.ScreenSize()
	}
	if err := errors.ValidateViewport(w, h); err != nil {
		return err
	}
	degenerate := w == 0 || h == 0
	if degenerate && cfg.AutoDesign() {
		return errors.New(errors.ErrCodeInvalidDesignSize,
			"automatic design size needs a non-zero screen, got %vx%v", w, h)
	}

	c.mu.Lock()
	c.cfg = cfg
	c.state = Configured
	c.snap, c.hasSnap = Snapshot{}, false
	c.last = geom.Size{}
	c.mu.Unlock()

	if degenerate {
		c.logger.Debugf("Screen is %vx%v, deferring first pass", w, h)
		return nil
	}
	_, err = c.pass(triggerSet, w, h)
	return err
}

// Notify reports a new viewport size. Zero or unchanged sizes are ignored.
// Otherwise a pass runs and, once committed, Config.OnOrientationChange and
// every resize callback are invoked. Notify reports whether a pass ran.
func (c *Controller) Notify(w, h float64) (bool, error) {
	c.passMu.Lock()
	defer c.passMu.Unlock()

	if err := errors.ValidateViewport(w, h); err != nil {
		c.logger.Warnf("Ignoring resize: %v", err)
		return false, err
	}

	c.mu.Lock()
	state, last, cfg := c.state, c.last, c.cfg
	c.mu.Unlock()

	if state == Uninitialized {
		return false, errors.New(errors.ErrCodeNotConfigured, "resize before configuration")
	}
	if w == 0 || h == 0 || (geom.Size{Width: w, Height: h}) == last {
		return false, nil
	}

	callbacks, err := c.pass(triggerResize, w, h)
	if err != nil {
		return false, err
	}

	snap, _ := c.Snapshot()
	observability.Adapt().OnOrientationChange(snap.Orientation.String(), len(callbacks))
	if cfg.OnOrientationChange != nil {
		cfg.OnOrientationChange(snap.Orientation)
	}
	for _, cb := range callbacks {
		cb.Value(snap)
	}
	return true, nil
}

// pass plans, commits and applies one adaptation. It returns the resize
// callbacks registered at commit time. The caller holds passMu.
func (c *Controller) pass(trigger string, w, h float64) ([]widget.Entry[ResizeCallback], error) {
	start := time.Now()
	observability.Adapt().OnPassStart(trigger, w, h)

	c.mu.Lock()
	cfg, prev := c.cfg, c.state
	c.state = Adapting
	c.mu.Unlock()

	snap, err := Plan(cfg, w, h)
	if err != nil {
		c.mu.Lock()
		c.state = prev
		c.mu.Unlock()
		observability.Adapt().OnPassComplete(trigger, "", false, time.Since(start), err)
		c.logger.Errorf("Adaptation pass failed for %vx%v: %v", w, h, err)
		return nil, err
	}

	c.mu.Lock()
	c.snap, c.hasSnap = snap, true
	c.last = geom.Size{Width: w, Height: h}
	widgets := c.widgets.Entries()
	fits := c.fits.Entries()
	callbacks := c.callbacks.Entries()
	c.mu.Unlock()

	c.applyHost(snap)
	for _, m := range widget.Arrange(widgets, snap.Logical, snap.Margins) {
		m.Apply()
	}
	widget.Fit(fits, snap.Canvas)

	c.mu.Lock()
	c.state = Idle
	c.mu.Unlock()

	observability.Adapt().OnPassComplete(trigger, snap.Orientation.String(), snap.ForceRotate, time.Since(start), nil)
	c.logger.Debugf("Adapted %vx%v (%s, rotate=%t): buffer %vx%v, ratio %v×%v",
		w, h, snap.Orientation, snap.ForceRotate,
		snap.Canvas.ActualWidth, snap.Canvas.ActualHeight, snap.Ratio.X, snap.Ratio.Y)
	return callbacks, nil
}

func (c *Controller) applyHost(s Snapshot) {
	if c.stage != nil {
		c.stage.SetWorldBounds(s.Stage.WorldBounds)
		c.stage.SetContentRotation(s.Stage.Angle, s.Stage.Pivot)
		c.stage.SetCameraBounds(s.Stage.CameraBounds)
	}
	if c.surface != nil {
		c.surface.SetBufferSize(s.Canvas.Actual())
		c.surface.ApplyStyle(s.Style)
		c.surface.SetPageAlign(s.Align.NativeH, s.Align.NativeV)
	}
}

// Align registers target to be repositioned by anchor on every pass. If a
// pass has already committed, the target is positioned immediately.
func (c *Controller) Align(target widget.Positionable, anchor widget.Anchor) (widget.Handle, error) {
	if target == nil {
		return widget.Handle{}, errors.New(errors.ErrCodeInvalidArgument, "align target is nil")
	}
	if err := anchor.Validate(); err != nil {
		return widget.Handle{}, err
	}

	c.mu.Lock()
	w := widget.Widget{Target: target, Anchor: anchor}
	id := c.widgets.Add(w)
	snap, ok := c.snap, c.hasSnap
	c.mu.Unlock()

	if ok {
		entry := []widget.Entry[widget.Widget]{{ID: id, Value: w}}
		for _, m := range widget.Arrange(entry, snap.Logical, snap.Margins) {
			m.Apply()
		}
	}
	return widget.NewHandle(id, c.removeWidget), nil
}

// Fit registers target to be resized to the full backing buffer on every
// pass. A nil target is ignored and yields an inert handle.
func (c *Controller) Fit(target widget.Resizable) widget.Handle {
	if target == nil {
		c.logger.Warn("Ignoring nil fit target")
		return widget.Handle{}
	}

	c.mu.Lock()
	id := c.fits.Add(target)
	snap, ok := c.snap, c.hasSnap
	c.mu.Unlock()

	if ok {
		target.SetRect(widget.FitRect(snap.Canvas))
	}
	return widget.NewHandle(id, c.removeFit)
}

// SetResizeCallback registers fn to run after every committed resize pass.
// A nil fn is rejected and leaves the registry unchanged.
func (c *Controller) SetResizeCallback(fn ResizeCallback) (widget.Handle, error) {
	if fn == nil {
		c.logger.Warn("Ignoring nil resize callback")
		return widget.Handle{}, errors.New(errors.ErrCodeInvalidArgument, "resize callback is nil")
	}

	c.mu.Lock()
	id := c.callbacks.Add(fn)
	c.mu.Unlock()
	return widget.NewHandle(id, c.removeCallback), nil
}

// Pin maps a pinned element's viewport position to stage coordinates with
// the pin function of the last committed pass.
func (c *Controller) Pin(viewport, offset, scale geom.Vec) geom.Vec {
	snap, ok := c.Snapshot()
	if !ok {
		return stage.NewPinFunc(false)(viewport, offset, scale)
	}
	return snap.Pin(viewport, offset, scale)
}

// Counts returns the number of registered widgets, fit targets and resize
// callbacks.
func (c *Controller) Counts() (widgets, fits, callbacks int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.widgets.Len(), c.fits.Len(), c.callbacks.Len()
}

func (c *Controller) removeWidget(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.widgets.Remove(id)
}

func (c *Controller) removeFit(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fits.Remove(id)
}

func (c *Controller) removeCallback(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callbacks.Remove(id)
}
