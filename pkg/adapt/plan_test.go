package adapt

import (
	"testing"

	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/orient"
	"github.com/matzehuels/screenfit/pkg/scale"
	"github.com/matzehuels/screenfit/pkg/stage"
)

func portraitConfig() Config {
	return Config{
		DesignWidth:  750,
		DesignHeight: 1334,
		WorldBounds:  geom.Rect{Width: 750, Height: 1334},
		ScaleMode:    scale.ShowAll,
		ScreenMode:   orient.Portrait,
	}
}

func TestPlanPortraitDesignOnLandscapeScreen(t *testing.T) {
	s, err := Plan(portraitConfig(), 1334, 750)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if s.Orientation != orient.Landscape {
		t.Errorf("Orientation = %s, want landscape", s.Orientation)
	}
	if !s.ForceRotate {
		t.Fatal("ForceRotate = false, want true")
	}
	if s.View != (geom.Vec{X: 1334, Y: 750}) {
		t.Errorf("View = %+v", s.View)
	}
	if s.Design != (Design{Width: 750, Height: 1334, X: 1334, Y: 750}) {
		t.Errorf("Design = %+v", s.Design)
	}
	if s.Ratio != (geom.Vec{X: 1, Y: 1}) {
		t.Errorf("Ratio = %+v, want 1x1", s.Ratio)
	}
	if s.Canvas.ActualWidth != 1334 || s.Canvas.ActualHeight != 750 {
		t.Errorf("buffer = %vx%v, want 1334x750", s.Canvas.ActualWidth, s.Canvas.ActualHeight)
	}
	if s.Canvas.StyleWidth != 1334 || s.Canvas.StyleHeight != 750 {
		t.Errorf("style = %vx%v, want 1334x750", s.Canvas.StyleWidth, s.Canvas.StyleHeight)
	}
	if s.Logical != (geom.Size{Width: 750, Height: 1334}) {
		t.Errorf("Logical = %+v, want 750x1334", s.Logical)
	}
	if s.Stage.Angle != stage.RotationAngle || s.Stage.Pivot != (geom.Vec{X: 750}) {
		t.Errorf("Stage = %+v", s.Stage)
	}
	if want := (geom.Rect{Width: 1334, Height: 750}); s.Stage.CameraBounds != want {
		t.Errorf("CameraBounds = %+v, want %+v", s.Stage.CameraBounds, want)
	}
	if got := s.Pin(geom.Vec{X: 10, Y: 20}, geom.Vec{}, geom.Vec{X: 1, Y: 1}); got != (geom.Vec{X: -20, Y: 10}) {
		t.Errorf("Pin = %+v, want rotated mapping", got)
	}
}

func TestPlanMatchingOrientationDoesNotRotate(t *testing.T) {
	s, err := Plan(portraitConfig(), 375, 667)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if s.ForceRotate || s.Stage.Rotated() {
		t.Fatalf("unexpected rotation: %+v", s.Stage)
	}
	if s.Ratio.X != 0.5 || s.Ratio.Y != 0.5 {
		t.Errorf("Ratio = %+v, want 0.5", s.Ratio)
	}
	if s.Logical != (geom.Size{Width: 750, Height: 1334}) {
		t.Errorf("Logical = %+v", s.Logical)
	}
}

func TestPlanAutoDesign(t *testing.T) {
	s, err := Plan(Config{}, 800, 600)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	// Portrait presentation on a landscape screen: the presentation view is 600x800.
	if s.Design.Width != 1200 || s.Design.Height != 1600 {
		t.Errorf("Design = %+v, want 1200x1600", s.Design)
	}
	if s.Ratio != (geom.Vec{X: 0.5, Y: 0.5}) {
		t.Errorf("Ratio = %+v, want 0.5", s.Ratio)
	}
}

func TestPlanErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		w, h float64
		code errors.Code
	}{
		{
			name: "invalid scale mode",
			cfg:  Config{DesignWidth: 750, DesignHeight: 1334, ScaleMode: "INVALID"},
			w:    1334,
			h:    750,
			code: errors.ErrCodeInvalidScaleMode,
		},
		{
			name: "invalid screen mode",
			cfg:  Config{ScreenMode: "sideways"},
			w:    1334,
			h:    750,
			code: errors.ErrCodeInvalidScreenMode,
		},
		{
			name: "negative design",
			cfg:  Config{DesignWidth: -1, DesignHeight: 100},
			w:    1334,
			h:    750,
			code: errors.ErrCodeInvalidDesignSize,
		},
		{
			name: "negative world bounds",
			cfg:  Config{WorldBounds: geom.Rect{Width: -5}},
			w:    1334,
			h:    750,
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "degenerate viewport",
			cfg:  portraitConfig(),
			w:    0,
			h:    750,
			code: errors.ErrCodeInvalidViewport,
		},
		{
			name: "negative viewport",
			cfg:  portraitConfig(),
			w:    -1,
			h:    750,
			code: errors.ErrCodeInvalidViewport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(tt.cfg, tt.w, tt.h)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Plan error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestPlanInvalidModeIsConfigurationError(t *testing.T) {
	_, err := Plan(Config{ScaleMode: "INVALID"}, 1334, 750)
	if !errors.IsConfiguration(err) {
		t.Fatalf("IsConfiguration(%v) = false", err)
	}
}

func TestPlanLogicalSizeEqualsDesign(t *testing.T) {
	screens := []geom.Size{{Width: 1334, Height: 750}, {Width: 750, Height: 1334}, {Width: 1024, Height: 768}, {Width: 414, Height: 896}}
	modes := []scale.Mode{scale.ShowAll, scale.ExactFit, scale.NoBorder}

	for _, mode := range modes {
		for _, sc := range screens {
			cfg := portraitConfig()
			cfg.ScaleMode = mode
			s, err := Plan(cfg, sc.Width, sc.Height)
			if err != nil {
				t.Fatalf("%s %v: %v", mode, sc, err)
			}
			if s.Logical != (geom.Size{Width: 750, Height: 1334}) {
				t.Errorf("%s %v: Logical = %+v", mode, sc, s.Logical)
			}
		}
	}
}

func TestPlanFixedModesLockAxis(t *testing.T) {
	for _, sc := range []geom.Size{{Width: 1334, Height: 750}, {Width: 414, Height: 896}} {
		cfg := portraitConfig()
		cfg.ScaleMode = scale.FixedWidth
		s, err := Plan(cfg, sc.Width, sc.Height)
		if err != nil {
			t.Fatal(err)
		}
		if s.Logical.Width != 750 {
			t.Errorf("FIXED_WIDTH on %v: logical width = %v, want 750", sc, s.Logical.Width)
		}

		cfg.ScaleMode = scale.FixedHeight
		s, err = Plan(cfg, sc.Width, sc.Height)
		if err != nil {
			t.Fatal(err)
		}
		if s.Logical.Height != 1334 {
			t.Errorf("FIXED_HEIGHT on %v: logical height = %v, want 1334", sc, s.Logical.Height)
		}
	}
}

func TestContentToScreen(t *testing.T) {
	cfg := portraitConfig()
	cfg.AlignH, cfg.AlignV = true, true

	t.Run("direct", func(t *testing.T) {
		s, err := Plan(cfg, 375, 667)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.ContentToScreen(geom.Vec{X: 750, Y: 1334}); got != (geom.Vec{X: 375, Y: 667}) {
			t.Errorf("ContentToScreen(corner) = %+v, want 375,667", got)
		}
	})

	t.Run("rotated", func(t *testing.T) {
		s, err := Plan(cfg, 1334, 750)
		if err != nil {
			t.Fatal(err)
		}
		// The logical top-right corner lands on the buffer origin.
		if got := s.ContentToScreen(geom.Vec{X: 750}); got != (geom.Vec{}) {
			t.Errorf("ContentToScreen(top-right) = %+v, want origin", got)
		}
		if got := s.ContentToScreen(geom.Vec{Y: 1334}); got != (geom.Vec{X: 1334, Y: 750}) {
			t.Errorf("ContentToScreen(bottom-left) = %+v, want 1334,750", got)
		}
	})
}

func TestPlanAlignmentOverflow(t *testing.T) {
	cfg := portraitConfig()
	cfg.ScaleMode = scale.NoBorder
	cfg.AlignH, cfg.AlignV = true, true

	// 400x600 portrait: NO_BORDER picks max(400/750, 600/1334) = 0.5333...
	s, err := Plan(cfg, 400, 600)
	if err != nil {
		t.Fatal(err)
	}
	if s.Align.Top >= 0 {
		t.Errorf("expected negative top displacement for overflow, got %+v", s.Align)
	}
	if s.Margins.Top <= 0 || s.Margins.Top != s.Margins.Bottom {
		t.Errorf("expected symmetric vertical margins, got %+v", s.Margins)
	}
}
