package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/obj"
)

var fallbackColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// Palette maps sprites to fill colors. Everything is drawn as a solid rect
// by scaling a single white pixel.
type Palette struct {
	tiles map[obj.TileKind]color.RGBA
	items map[obj.ItemKind]color.RGBA
	hero  color.RGBA
	pixel *ebiten.Image
}

func NewPalette(kinds *obj.Kinds, heroColor string) *Palette {
	p := &Palette{
		tiles: make(map[obj.TileKind]color.RGBA),
		items: make(map[obj.ItemKind]color.RGBA),
		hero:  parseHexColor(heroColor),
	}
	if kinds != nil {
		for k, info := range kinds.Tiles {
			p.tiles[k] = parseHexColor(info.Color)
		}
		for k, info := range kinds.Items {
			p.items[k] = parseHexColor(info.Color)
		}
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Color returns the fill color for s.
func (p *Palette) Color(s obj.Sprite) color.RGBA {
	switch {
	case s.Hero:
		return p.hero
	case s.Item != 0:
		if c, ok := p.items[s.Item]; ok {
			return c
		}
	case s.Tile != 0:
		if c, ok := p.tiles[s.Tile]; ok {
			return c
		}
	}
	return fallbackColor
}

// Draw fills s's rect on dst, in dst's coordinate space.
func (p *Palette) Draw(dst *ebiten.Image, s obj.Sprite) {
	p.FillRect(dst, s.Rect, p.Color(s))
}

func (p *Palette) FillRect(dst *ebiten.Image, r common.Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(p.pixel, op)
}

// parseHexColor parses a color in the form #rrggbb. Returns opaque magenta
// if parse fails.
func parseHexColor(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallbackColor
	}
	var r, g, b uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallbackColor
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
