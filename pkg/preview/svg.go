package preview

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/geom"
)

const previewCSS = `
    .viewport { fill: #20232a; }
    .surface { fill: #f4f1ea; stroke: #8a8f98; stroke-width: 1; }
    .fit { fill: #d9e4dd; fill-opacity: 0.6; }
    .widget { fill: #4c8bf5; fill-opacity: 0.7; stroke: #1a4fb0; stroke-width: 1; }
    .label { font-family: ui-monospace, monospace; font-size: 11px; fill: #ffffff; }
    .caption { font-family: ui-monospace, monospace; font-size: 12px; fill: #c8ccd4; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	items   []Item
	labels  bool
	caption bool
}

func WithItems(items ...Item) SVGOption { return func(r *svgRenderer) { r.items = items } }
func WithLabels() SVGOption             { return func(r *svgRenderer) { r.labels = true } }
func WithCaption() SVGOption            { return func(r *svgRenderer) { r.caption = true } }

// RenderSVG renders the snapshot at viewport resolution.
func RenderSVG(s adapt.Snapshot, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	f := Layout(s, r.items)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Viewport.Width, f.Viewport.Height, f.Viewport.Width, f.Viewport.Height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", previewCSS)

	writeRect(&buf, "viewport", "", f.Viewport)
	writeRect(&buf, "surface", "", f.Surface)

	for _, p := range f.Items {
		if p.Fit {
			writeRect(&buf, "fit", p.Name, p.Screen)
		}
	}
	for _, p := range f.Items {
		if p.Fit {
			continue
		}
		writeRect(&buf, "widget", p.Name, p.Screen)
		if r.labels {
			writeText(&buf, "label", p.Screen.X+3, p.Screen.Y+12, p.Name)
		}
	}

	if r.caption {
		writeText(&buf, "caption", 6, f.Viewport.Height-8, Caption(s))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Caption is a one-line summary of a snapshot.
func Caption(s adapt.Snapshot) string {
	rot := ""
	if s.ForceRotate {
		rot = " rotated"
	}
	return fmt.Sprintf("%s %gx%g%s %s ratio %.3gx%.3g buffer %gx%g",
		s.Orientation, s.Screen.Width, s.Screen.Height, rot, s.ScaleMode,
		s.Ratio.X, s.Ratio.Y, s.Canvas.ActualWidth, s.Canvas.ActualHeight)
}

func writeRect(buf *bytes.Buffer, class, id string, r geom.Rect) {
	idAttr := ""
	if id != "" {
		idAttr = fmt.Sprintf(` id="%s-%s"`, class, escape(id))
	}
	fmt.Fprintf(buf, `  <rect class="%s"%s x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		class, idAttr, r.X, r.Y, r.Width, r.Height)
}

func writeText(buf *bytes.Buffer, class string, x, y float64, s string) {
	fmt.Fprintf(buf, `  <text class="%s" x="%.1f" y="%.1f">%s</text>`+"\n", class, x, y, escape(s))
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
