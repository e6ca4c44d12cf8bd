package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/orient"
	"github.com/matzehuels/screenfit/pkg/scale"
)

func TestLoadExampleProfiles(t *testing.T) {
	tests := []struct {
		file      string
		name      string
		mode      scale.Mode
		screen    orient.Orientation
		viewports int
		widgets   int
	}{
		{
			file:      "phone.toml",
			name:      "phone-portrait",
			mode:      scale.ShowAll,
			screen:    orient.Portrait,
			viewports: 3,
			widgets:   3,
		},
		{
			file:      "tablet.yaml",
			name:      "tablet-landscape",
			mode:      scale.FixedHeight,
			screen:    orient.Landscape,
			viewports: 3,
			widgets:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := Load(filepath.Join("..", "..", "examples", "profiles", tt.file))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if p.Name != tt.name {
				t.Errorf("Name = %q, want %q", p.Name, tt.name)
			}
			if len(p.Viewports) != tt.viewports || len(p.Widgets) != tt.widgets {
				t.Errorf("got %d viewports, %d widgets", len(p.Viewports), len(p.Widgets))
			}

			cfg, err := p.Config()
			if err != nil {
				t.Fatalf("Config: %v", err)
			}
			if cfg.ScaleMode != tt.mode || cfg.ScreenMode != tt.screen {
				t.Errorf("modes = %s/%s, want %s/%s", cfg.ScaleMode, cfg.ScreenMode, tt.mode, tt.screen)
			}
		})
	}
}

func TestParseTOML(t *testing.T) {
	src := `
scale_mode = "no-border"

[design]
width = 750
height = "auto"

[[widgets]]
name = "close"
width = 80
height = 80
anchor = { right = 20, top = 10 }
`
	p, err := Parse([]byte(src), FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Design.Width != 750 || !p.Design.Height.IsAuto() {
		t.Errorf("Design = %+v", p.Design)
	}
	a := p.Widgets[0].Anchor
	if a.Right == nil || *a.Right != 20 || a.Top == nil || *a.Top != 10 || a.Left != nil {
		t.Errorf("Anchor = %+v", a)
	}

	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScaleMode != scale.NoBorder {
		t.Errorf("ScaleMode = %s", cfg.ScaleMode)
	}
	if cfg.WorldBounds != (geom.Rect{}) {
		t.Errorf("WorldBounds = %+v, want zero for auto design", cfg.WorldBounds)
	}
}

func TestConfigDefaultsWorldToDesign(t *testing.T) {
	cfg, err := Default().Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorldBounds != (geom.Rect{Width: 750, Height: 1334}) {
		t.Errorf("WorldBounds = %+v", cfg.WorldBounds)
	}
	if !cfg.AlignH || !cfg.AlignV {
		t.Error("default profile should centre both axes")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		format Format
		code   errors.Code
	}{
		{
			name:   "unknown scale mode",
			src:    `scale_mode = "INVALID"`,
			format: FormatTOML,
			code:   errors.ErrCodeInvalidScaleMode,
		},
		{
			name:   "unknown screen mode",
			src:    "screen_mode: sideways\n",
			format: FormatYAML,
			code:   errors.ErrCodeInvalidScreenMode,
		},
		{
			name:   "negative design",
			src:    "design:\n  width: -10\n",
			format: FormatYAML,
			code:   errors.ErrCodeInvalidDesignSize,
		},
		{
			name:   "zero viewport",
			src:    "[[viewports]]\nname = \"x\"\nwidth = 0\nheight = 10\n",
			format: FormatTOML,
			code:   errors.ErrCodeInvalidViewport,
		},
		{
			name:   "unnamed widget",
			src:    "widgets:\n  - width: 10\n    height: 10\n",
			format: FormatYAML,
			code:   errors.ErrCodeInvalidConfig,
		},
		{
			name:   "duplicate widget",
			src:    "widgets:\n  - {name: a, width: 1, height: 1}\n  - {name: a, width: 1, height: 1}\n",
			format: FormatYAML,
			code:   errors.ErrCodeInvalidConfig,
		},
		{
			name:   "unknown yaml field",
			src:    "scale: show_all\n",
			format: FormatYAML,
			code:   errors.ErrCodeInvalidFormat,
		},
		{
			name:   "malformed toml",
			src:    "name = \n",
			format: FormatTOML,
			code:   errors.ErrCodeInvalidFormat,
		},
		{
			name:   "unknown format",
			src:    "{}",
			format: "json",
			code:   errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), tt.format)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Parse error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestParseEmptyYAML(t *testing.T) {
	p, err := Parse(nil, FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.AutoDesign() || cfg.ScaleMode != scale.ShowAll {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "profile.json")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("extension error = %v", err)
	}
	if _, err := Load(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("empty path error = %v", err)
	}

	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("scale_mode: stretch\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidScaleMode) {
		t.Errorf("bad mode error = %v", err)
	}
}

func TestAttach(t *testing.T) {
	p := Default()
	c := adapt.New(adapt.WithScreen(adapt.ScreenFunc(func() (float64, float64) { return 375, 667 })))
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(cfg); err != nil {
		t.Fatal(err)
	}

	boxes, err := p.Attach(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(boxes) != len(p.Widgets) {
		t.Fatalf("got %d boxes", len(boxes))
	}
	widgets, fits, _ := c.Counts()
	if widgets != 4 || fits != 1 {
		t.Errorf("Counts = %d widgets, %d fits", widgets, fits)
	}

	// background fills the buffer; close sits 20px from the right edge.
	if boxes[0].Rect() != (geom.Rect{Width: 750, Height: 1334}) {
		t.Errorf("background = %+v", boxes[0].Rect())
	}
	if boxes[1].Position() != (geom.Vec{X: 650, Y: 20}) {
		t.Errorf("close = %+v", boxes[1].Position())
	}
}

func TestViewportLookup(t *testing.T) {
	p := Default()
	if v, ok := p.Viewport("ipad"); !ok || v.Width != 768 {
		t.Errorf("Viewport(ipad) = %+v, %v", v, ok)
	}
	if _, ok := p.Viewport("nope"); ok {
		t.Error("unexpected viewport")
	}
}
