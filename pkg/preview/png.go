package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/errors"
	"github.com/matzehuels/screenfit/pkg/geom"
)

// MaxPNGSide bounds either side of a rendered PNG in pixels.
const MaxPNGSide = 8192

var (
	viewportColor = color.RGBA{0x20, 0x23, 0x2a, 0xff}
	surfaceColor  = color.RGBA{0xf4, 0xf1, 0xea, 0xff}
	fitColor      = color.RGBA{0x82, 0x89, 0x85, 0x99}
	widgetColor   = color.RGBA{0x35, 0x61, 0xab, 0xb3}
	outlineColor  = color.RGBA{0x1a, 0x4f, 0xb0, 0xff}
	labelColor    = color.White
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	items  []Item
	labels bool
	scale  float64
}

// WithPNGItems sets the items drawn over the surface.
func WithPNGItems(items ...Item) PNGOption {
	return func(r *pngRenderer) { r.items = items }
}

// WithPNGLabels draws item names with a fixed 7x13 bitmap face.
func WithPNGLabels() PNGOption {
	return func(r *pngRenderer) { r.labels = true }
}

// WithScale sets the PNG scale factor (default 1.0, one pixel per viewport pixel).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the snapshot.
func RenderPNG(s adapt.Snapshot, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "png scale must be positive, got %v", r.scale)
	}

	w := int(math.Ceil(s.Screen.Width * r.scale))
	h := int(math.Ceil(s.Screen.Height * r.scale))
	if w <= 0 || h <= 0 || w > MaxPNGSide || h > MaxPNGSide {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "png size %dx%d out of range (max %d per side)", w, h, MaxPNGSide)
	}

	f := Layout(s, r.items)
	to := geom.Scale(r.scale, r.scale)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	fillRect(img, f.Viewport.Transform(to), viewportColor)
	fillRect(img, f.Surface.Transform(to), surfaceColor)
	for _, p := range f.Items {
		if p.Fit {
			fillRect(img, p.Screen.Transform(to), fitColor)
		}
	}
	for _, p := range f.Items {
		if p.Fit {
			continue
		}
		rect := p.Screen.Transform(to)
		fillRect(img, rect, widgetColor)
		strokeRect(img, rect, outlineColor)
		if r.labels {
			drawLabel(img, rect.X+3, rect.Y+12, p.Name)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// fillRect composites an axis-aligned rectangle, clipped to dst.
func fillRect(dst *image.RGBA, r geom.Rect, c color.Color) {
	b := dst.Bounds()
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), float64(b.Dx())), min(r.Bottom(), float64(b.Dy()))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(x0), float32(y0))
	z.LineTo(float32(x1), float32(y0))
	z.LineTo(float32(x1), float32(y1))
	z.LineTo(float32(x0), float32(y1))
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokeRect draws a one pixel outline inside r.
func strokeRect(dst *image.RGBA, r geom.Rect, c color.Color) {
	fillRect(dst, geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c)
	fillRect(dst, geom.Rect{X: r.X, Y: r.Bottom() - 1, Width: r.Width, Height: 1}, c)
	fillRect(dst, geom.Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c)
	fillRect(dst, geom.Rect{X: r.Right() - 1, Y: r.Y, Width: 1, Height: r.Height}, c)
}

func drawLabel(dst *image.RGBA, x, y float64, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(s)
}
