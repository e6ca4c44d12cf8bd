// Package adapt coordinates screen adaptation for a rendering surface.
//
// A [Controller] owns the adaptation configuration, the widget and fit
// registries, and the snapshot of the most recent pass. Every pass runs the
// same pipeline:
//
//  1. detect the viewport orientation ([orient.Detect])
//  2. decide whether content must be force-rotated ([orient.ForceRotate])
//  3. resolve the per-axis scale ratio ([scale.Resolve])
//  4. size the backing buffer and its displayed size ([canvas.Compute])
//  5. rotate the stage and pick the pin function ([stage.Rotate], [stage.NewPinFunc])
//  6. centre the surface in the viewport ([align.Compute])
//  7. reposition anchored widgets and resize fit targets ([widget.Arrange], [widget.Fit])
//
// Steps 1 to 6 are pure and available on their own as [Plan]. The controller
// commits a plan's [Snapshot] wholesale, so callers never observe a partially
// applied pass.
//
// # Hosts
//
// The controller talks to its host through small interfaces supplied as
// options: [Screen] reports the viewport size, [Stage] receives the content
// transform, and [Surface] receives the buffer size and display style. All
// of them are optional, which keeps the controller usable in tests and in
// headless tools.
//
// # Callbacks
//
// Resize callbacks and Config.OnOrientationChange run after a pass commits,
// on the goroutine that called [Controller.Notify]. They may register or
// remove widgets, but must not call Set or Notify.
package adapt
