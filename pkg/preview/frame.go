package preview

import (
	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/geom"
	"github.com/matzehuels/screenfit/pkg/widget"
)

// Item is an element drawn in a preview. Rect is in logical coordinates for
// anchored elements and in buffer coordinates for fit elements.
type Item struct {
	Name string    `json:"name"`
	Rect geom.Rect `json:"rect"`
	Fit  bool      `json:"fit,omitempty"`
}

// BoxItem describes b as a preview item.
func BoxItem(b *widget.Box, fit bool) Item {
	return Item{Name: b.Name, Rect: b.Rect(), Fit: fit}
}

// Placed is an item with its rectangle in viewport pixels.
type Placed struct {
	Item
	Screen geom.Rect `json:"screen"`
}

// Frame is a snapshot laid out in viewport pixels.
type Frame struct {
	Viewport geom.Rect `json:"viewport"`
	Surface  geom.Rect `json:"surface"`
	Items    []Placed  `json:"items"`
}

// Layout maps the surface and every item to viewport pixels.
func Layout(s adapt.Snapshot, items []Item) Frame {
	buffer := s.BufferMatrix()
	content := s.ScreenMatrix()

	f := Frame{
		Viewport: geom.RectFromSize(s.Screen),
		Surface:  geom.RectFromSize(s.Canvas.Actual()).Transform(buffer),
		Items:    make([]Placed, 0, len(items)),
	}
	for _, it := range items {
		m := content
		if it.Fit {
			m = buffer
		}
		f.Items = append(f.Items, Placed{Item: it, Screen: it.Rect.Transform(m)})
	}
	return f
}
