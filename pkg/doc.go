// Package pkg provides the core libraries for screenfit screen adaptation.
//
// # Overview
//
// Screenfit takes content authored at a fixed design size and works out how
// to show it on an arbitrary viewport: which way the screen is held, whether
// the content must be rotated to keep its intended orientation, how much to
// scale it, how large the backing buffer is, where it sits on the page, and
// where anchored widgets land. The pkg directory is organized into three
// areas:
//
//  1. Geometry - [geom], [orient], [scale], [canvas], [stage], [align]
//  2. Adaptation - [adapt] (planning and the controller) and [widget]
//  3. Tooling - [profile], [preview], [cache], [ebitenhost], [observability]
//
// # Architecture
//
// One adaptation pass flows through the geometry packages in order:
//
//	viewport size
//	     ↓
//	[orient] measured orientation, force-rotate decision
//	     ↓
//	[scale] ratio for the scale mode
//	     ↓
//	[canvas] backing buffer and display size
//	     ↓
//	[stage] content rotation and camera bounds
//	     ↓
//	[align] page offsets and [widget] margins
//	     ↓
//	[adapt.Snapshot]
//
// [adapt.Plan] runs the pass as a pure function. [adapt.Controller] keeps
// the configuration, replans on resize, applies the result to a host and
// repositions registered widgets.
//
// # Quick Start
//
//	cfg := adapt.Config{DesignWidth: 750, DesignHeight: 1334}
//	snap, err := adapt.Plan(cfg, 1334, 750)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(snap.ForceRotate, snap.Ratio)
//
// Live adaptation with widgets:
//
//	c := adapt.New(adapt.WithScreen(screen), adapt.WithStage(stage))
//	if err := c.Set(cfg); err != nil {
//	    return err
//	}
//	c.Align(closeButton, widget.Anchor{Right: widget.Px(20), Top: widget.Px(20)})
//	c.Notify(w, h) // on every host resize
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/adapt/...    # Specific package
//	go test -run Example       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/geom
// [orient]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/orient
// [scale]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/scale
// [canvas]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/canvas
// [stage]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/stage
// [align]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/align
// [adapt]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/adapt
// [widget]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/widget
// [profile]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/profile
// [preview]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/preview
// [cache]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/cache
// [ebitenhost]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/ebitenhost
// [observability]: https://pkg.go.dev/github.com/matzehuels/screenfit/pkg/observability
package pkg
