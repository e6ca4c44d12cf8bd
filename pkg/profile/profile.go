// Package profile loads adaptation profiles from TOML or YAML files.
//
// A profile bundles everything needed to reproduce an adaptation outside a
// running host: the design size, scale and screen modes, alignment flags,
// a list of named viewports to evaluate, and sample widgets to place.
//
//	name = "phone-portrait"
//	scale_mode = "show_all"
//	screen_mode = "portrait"
//
//	[design]
//	width = 750
//	height = "auto"
//
//	[align]
//	horizontal = true
//	vertical = true
//
//	[[viewports]]
//	name = "iphone-8-landscape"
//	width = 1334
//	height = 750
//
//	[[widgets]]
//	name = "close"
//	width = 80
//	height = 80
//	anchor = { right = 20, top = 20 }
package profile

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/orient"
	"github.com/matzehuels/screenfit/pkg/scale"
	"github.com/matzehuels/screenfit/pkg/widget"
)

// Format is a profile encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Profile is a decoded adaptation profile.
type Profile struct {
	Name       string     `toml:"name" yaml:"name"`
	Design     Design     `toml:"design" yaml:"design"`
	World      Bounds     `toml:"world" yaml:"world"`
	ScaleMode  string     `toml:"scale_mode" yaml:"scale_mode"`
	ScreenMode string     `toml:"screen_mode" yaml:"screen_mode"`
	Align      Align      `toml:"align" yaml:"align"`
	Viewports  []Viewport `toml:"viewports" yaml:"viewports"`
	Widgets    []Widget   `toml:"widgets" yaml:"widgets"`
}

// Design is the authored content size; either extent may be "auto".
type Design struct {
	Width  adapt.Length `toml:"width" yaml:"width"`
	Height adapt.Length `toml:"height" yaml:"height"`
}

// Bounds is the stage world rectangle.
type Bounds struct {
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Align holds the centring flags.
type Align struct {
	Horizontal bool `toml:"horizontal" yaml:"horizontal"`
	Vertical   bool `toml:"vertical" yaml:"vertical"`
}

// Viewport is a named screen size to evaluate.
type Viewport struct {
	Name   string  `toml:"name" yaml:"name"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Widget is a sample element placed on every pass. Fit widgets are resized
// to the whole backing buffer instead of being anchored.
type Widget struct {
	Name   string        `toml:"name" yaml:"name"`
	Width  float64       `toml:"width" yaml:"width"`
	Height float64       `toml:"height" yaml:"height"`
	Anchor widget.Anchor `toml:"anchor" yaml:"anchor"`
	Fit    bool          `toml:"fit" yaml:"fit"`
}

// Default returns the built-in profile: a 750x1334 portrait design with a
// handful of common phone and tablet viewports.
func Default() *Profile {
	return &Profile{
		Name:       "default",
		Design:     Design{Width: 750, Height: 1334},
		ScaleMode:  string(scale.ShowAll),
		ScreenMode: string(orient.Portrait),
		Align:      Align{Horizontal: true, Vertical: true},
		Viewports: []Viewport{
			{Name: "iphone-8", Width: 375, Height: 667},
			{Name: "iphone-8-landscape", Width: 667, Height: 375},
			{Name: "iphone-13", Width: 390, Height: 844},
			{Name: "ipad", Width: 768, Height: 1024},
			{Name: "desktop", Width: 1280, Height: 800},
		},
		Widgets: []Widget{
			{Name: "background", Width: 1, Height: 1, Fit: true},
			{Name: "close", Width: 80, Height: 80, Anchor: widget.Anchor{Right: widget.Px(20), Top: widget.Px(20)}},
			{Name: "title", Width: 400, Height: 100, Anchor: widget.Anchor{HorizontalCenter: true, Top: widget.Px(120)}},
			{Name: "play", Width: 240, Height: 96, Anchor: widget.Anchor{HorizontalCenter: true, VerticalCenter: true}},
			{Name: "menu", Width: 96, Height: 96, Anchor: widget.Anchor{Left: widget.Px(20), Bottom: widget.Px(20)}},
		},
	}
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported profile extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "profile %s not found", path)
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a profile.
func Parse(data []byte, format Format) (*Profile, error) {
	var p Profile
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
			return nil, decodeError(err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, decodeError(err)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown profile format %q", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// decodeError keeps typed errors raised by field decoders and tags the rest
// as format errors.
func decodeError(err error) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode profile")
}

// Validate checks the profile without building a configuration.
func (p *Profile) Validate() error {
	if _, err := p.Config(); err != nil {
		return err
	}
	for i, v := range p.Viewports {
		if err := errors.ValidateDimension(errors.ErrCodeInvalidViewport, fmt.Sprintf("viewport %d width", i), v.Width); err != nil {
			return err
		}
		if err := errors.ValidateDimension(errors.ErrCodeInvalidViewport, fmt.Sprintf("viewport %d height", i), v.Height); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(p.Widgets))
	for _, w := range p.Widgets {
		if strings.TrimSpace(w.Name) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "widget name cannot be empty")
		}
		if seen[w.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate widget %q", w.Name)
		}
		seen[w.Name] = true
		if err := errors.ValidateDimension(errors.ErrCodeInvalidConfig, "widget "+w.Name+" width", w.Width); err != nil {
			return err
		}
		if err := errors.ValidateDimension(errors.ErrCodeInvalidConfig, "widget "+w.Name+" height", w.Height); err != nil {
			return err
		}
		if err := w.Anchor.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Config builds the adaptation configuration. Zero world bounds default to
// the design rectangle when the design is explicit.
func (p *Profile) Config() (adapt.Config, error) {
	mode, err := scale.ParseMode(p.ScaleMode)
	if err != nil {
		return adapt.Config{}, err
	}
	screen, err := orient.ParseOrientation(p.ScreenMode)
	if err != nil {
		return adapt.Config{}, err
	}

	world := geom.Rect{X: p.World.X, Y: p.World.Y, Width: p.World.Width, Height: p.World.Height}
	if world == (geom.Rect{}) && !p.Design.Width.IsAuto() && !p.Design.Height.IsAuto() {
		world = geom.Rect{Width: float64(p.Design.Width), Height: float64(p.Design.Height)}
	}

	return adapt.Config{
		DesignWidth:  p.Design.Width,
		DesignHeight: p.Design.Height,
		WorldBounds:  world,
		ScaleMode:    mode,
		ScreenMode:   screen,
		AlignH:       p.Align.Horizontal,
		AlignV:       p.Align.Vertical,
	}.Normalize()
}

// Attach creates a box for every widget and registers it with c, anchored
// or fitted. Boxes are returned in profile order.
func (p *Profile) Attach(c *adapt.Controller) ([]*widget.Box, error) {
	boxes := make([]*widget.Box, 0, len(p.Widgets))
	for _, w := range p.Widgets {
		b := widget.NewBox(w.Name, w.Width, w.Height)
		if w.Fit {
			c.Fit(b)
		} else if _, err := c.Align(b, w.Anchor); err != nil {
			return nil, fmt.Errorf("widget %s: %w", w.Name, err)
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// Viewport returns the viewport with the given name.
func (p *Profile) Viewport(name string) (Viewport, bool) {
	for _, v := range p.Viewports {
		if v.Name == name {
			return v, true
		}
	}
	return Viewport{}, false
}
