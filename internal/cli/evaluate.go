package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/preview"
	"github.com/matzehuels/screenfit/pkg/profile"
)

// evaluation is one viewport's adaptation together with the profile's
// widgets as placed by that pass.
type evaluation struct {
	Name     string
	Snapshot adapt.Snapshot
	Items    []preview.Item
}

// evaluate runs a controller for p on a fixed w×h screen and collects the
// placed widgets.
func evaluate(logger *log.Logger, p *profile.Profile, name string, w, h float64) (evaluation, error) {
	cfg, err := p.Config()
	if err != nil {
		return evaluation{}, err
	}

	screen := adapt.ScreenFunc(func() (float64, float64) { return w, h })
	ctrl := adapt.New(adapt.WithLogger(logger), adapt.WithScreen(screen))
	if err := ctrl.Set(cfg); err != nil {
		return evaluation{}, fmt.Errorf("viewport %s: %w", name, err)
	}

	boxes, err := p.Attach(ctrl)
	if err != nil {
		return evaluation{}, err
	}
	snap, _ := ctrl.Snapshot()

	items := make([]preview.Item, len(boxes))
	for i, b := range boxes {
		items[i] = preview.BoxItem(b, p.Widgets[i].Fit)
	}
	return evaluation{Name: name, Snapshot: snap, Items: items}, nil
}

// viewportList resolves --viewport flags, falling back to the profile's
// named viewports.
func viewportList(p *profile.Profile, flags []string) ([]profile.Viewport, error) {
	if len(flags) == 0 {
		return p.Viewports, nil
	}
	out := make([]profile.Viewport, 0, len(flags))
	for _, f := range flags {
		if v, ok := p.Viewport(f); ok {
			out = append(out, v)
			continue
		}
		w, h, err := parseSize(f)
		if err != nil {
			return nil, err
		}
		out = append(out, profile.Viewport{Name: fmt.Sprintf("%gx%g", w, h), Width: w, Height: h})
	}
	return out, nil
}
