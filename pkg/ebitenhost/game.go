// Package ebitenhost runs an adaptation controller inside an ebiten game.
//
// [Game] implements ebiten.Game. Its Layout method feeds the outside window
// size to [adapt.Controller.Notify], so every window resize or device
// rotation triggers an adaptation pass. The scene draws in logical content
// coordinates onto an offscreen backing buffer sized by the pass; Draw then
// composites the buffer onto the window with the display ratio and the
// alignment offset.
//
//	g := ebitenhost.New(myScene, adapt.WithLogger(logger))
//	if err := g.Controller().Set(cfg); err != nil { ... }
//	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
//	err := ebiten.RunGame(g)
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/matzehuels/screenfit/pkg/adapt"
	"github.com/matzehuels/screenfit/pkg/geom"
)

// Scene is the application content.
type Scene interface {
	// Update advances the scene by one tick.
	Update(s adapt.Snapshot) error
	// Draw renders onto the backing buffer. content maps logical content
	// coordinates to buffer pixels and should be concatenated onto every
	// draw's GeoM.
	Draw(buffer *ebiten.Image, content ebiten.GeoM, s adapt.Snapshot)
}

// Game adapts a Scene to ebiten.Game.
type Game struct {
	ctrl   *adapt.Controller
	scene  Scene
	filter ebiten.Filter

	buffer *ebiten.Image
	size   geom.Size
}

// New returns a game whose controller is built with opts. The game itself
// is installed as the controller's surface.
func New(scene Scene, opts ...adapt.Option) *Game {
	g := &Game{scene: scene, filter: ebiten.FilterLinear}
	g.ctrl = adapt.New(append(opts, adapt.WithSurface(g))...)
	return g
}

// Controller returns the game's adaptation controller.
func (g *Game) Controller() *adapt.Controller { return g.ctrl }

// SetFilter sets the filter used when compositing the buffer.
func (g *Game) SetFilter(f ebiten.Filter) { g.filter = f }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	s, ok := g.ctrl.Snapshot()
	if !ok {
		return nil
	}
	return g.scene.Update(s)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	s, ok := g.ctrl.Snapshot()
	if !ok {
		return
	}

	buf := g.backingBuffer()
	if buf == nil {
		return
	}
	buf.Clear()
	g.scene.Draw(buf, ContentGeoM(s), s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = ScreenGeoM(s)
	op.Filter = g.filter
	screen.DrawImage(buf, op)
}

// Layout implements ebiten.Game. The outside size is reported to the
// controller; unchanged sizes are ignored there, so calling it every frame
// is cheap.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Errors are logged by the controller and keep the previous snapshot.
	_, _ = g.ctrl.Notify(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// SetBufferSize implements adapt.Surface. The image is reallocated lazily
// on the next Draw.
func (g *Game) SetBufferSize(s geom.Size) { g.size = s }

// ApplyStyle implements adapt.Surface. The composite transform already
// carries the displayed size and offset.
func (g *Game) ApplyStyle(string) {}

// SetPageAlign implements adapt.Surface. Centring is part of ScreenGeoM.
func (g *Game) SetPageAlign(h, v bool) {}

// BufferSize returns the backing buffer size of the last pass.
func (g *Game) BufferSize() geom.Size { return g.size }

func (g *Game) backingBuffer() *ebiten.Image {
	w, h := int(g.size.Width), int(g.size.Height)
	if w <= 0 || h <= 0 {
		return nil
	}
	if g.buffer == nil || g.buffer.Bounds().Dx() != w || g.buffer.Bounds().Dy() != h {
		if g.buffer != nil {
			g.buffer.Deallocate()
		}
		g.buffer = ebiten.NewImage(w, h)
	}
	return g.buffer
}

// ContentGeoM is the stage transform of s: logical content to buffer pixels.
func ContentGeoM(s adapt.Snapshot) ebiten.GeoM { return toGeoM(s.Stage.Matrix()) }

// ScreenGeoM places the buffer on the window: display ratio, then offset.
func ScreenGeoM(s adapt.Snapshot) ebiten.GeoM { return toGeoM(s.BufferMatrix()) }

func toGeoM(m geom.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}

var (
	_ ebiten.Game   = (*Game)(nil)
	_ adapt.Surface = (*Game)(nil)
)
