package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/obj"
)

// Compositor keeps one world-sized image per composite layer. The static and
// foreground layers are drawn once when a level is loaded; the active layer
// is cleared inside the viewport and redrawn every frame.
type Compositor struct {
	palette    *Palette
	background color.RGBA

	level  *obj.Level
	layers map[obj.CompositeLayer]*ebiten.Image
}

func NewCompositor(palette *Palette, background string) *Compositor {
	return &Compositor{
		palette:    palette,
		background: parseHexColor(background),
		layers:     make(map[obj.CompositeLayer]*ebiten.Image),
	}
}

// Load allocates the layer images for level and bakes the prebaked layers.
func (c *Compositor) Load(level *obj.Level) {
	for k, img := range c.layers {
		img.Deallocate()
		delete(c.layers, k)
	}
	c.level = level
	if level == nil {
		return
	}
	for _, layer := range obj.CompositeOrder {
		if layer == obj.CompositeBackground {
			continue
		}
		img := ebiten.NewImage(level.Width, level.Height)
		if layer.Prebaked() {
			for _, s := range obj.LayerSprites(layer, level, nil) {
				c.palette.Draw(img, s)
			}
		}
		c.layers[layer] = img
	}
}

// Draw composites one frame onto screen. viewport is the world rectangle on
// screen; its top-left lands at the screen origin.
func (c *Compositor) Draw(screen *ebiten.Image, level *obj.Level, hero *obj.Hero, viewport common.Rect) {
	if level != c.level {
		c.Load(level)
	}
	if level == nil {
		screen.Fill(c.background)
		return
	}
	vp := viewport.Image().Intersect(image.Rect(0, 0, level.Width, level.Height))

	for _, layer := range obj.CompositeOrder {
		if layer == obj.CompositeBackground {
			screen.Fill(c.background)
			continue
		}
		img := c.layers[layer]
		if img == nil || vp.Empty() {
			continue
		}
		if layer == obj.CompositeActive {
			c.redrawActive(img, level, hero, viewport, vp)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(vp.Min.X-viewport.X), float64(vp.Min.Y-viewport.Y))
		screen.DrawImage(img.SubImage(vp).(*ebiten.Image), op)
	}
}

func (c *Compositor) redrawActive(img *ebiten.Image, level *obj.Level, hero *obj.Hero, viewport common.Rect, vp image.Rectangle) {
	img.SubImage(vp).(*ebiten.Image).Clear()
	for _, s := range obj.LayerSprites(obj.CompositeActive, level, hero) {
		if s.Overlaps(viewport) {
			c.palette.Draw(img, s)
		}
	}
}
