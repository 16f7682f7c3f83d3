package obj

import (
	"fmt"

	"github.com/milk9111/parkour/common"
)

// CompositeLayer is one of the images stacked to form a frame.
type CompositeLayer int

const (
	CompositeBackground CompositeLayer = iota
	CompositeStatic
	CompositeActive
	CompositeForeground
)

// CompositeOrder is the back-to-front order every frame is composited in.
var CompositeOrder = []CompositeLayer{
	CompositeBackground,
	CompositeStatic,
	CompositeActive,
	CompositeForeground,
}

func (c CompositeLayer) String() string {
	switch c {
	case CompositeBackground:
		return "background"
	case CompositeStatic:
		return "static"
	case CompositeActive:
		return "active"
	case CompositeForeground:
		return "foreground"
	default:
		return fmt.Sprintf("composite(%d)", int(c))
	}
}

// Prebaked reports whether the layer is drawn once per level load rather
// than every frame.
func (c CompositeLayer) Prebaked() bool {
	return c == CompositeStatic || c == CompositeForeground
}

// Sprite is something drawn on a composite layer. Exactly one of Tile, Item
// or Hero identifies what it is.
type Sprite struct {
	common.Rect
	Tile TileKind
	Item ItemKind
	Hero bool
}

// LayerSprites returns what goes on layer c, in draw order. The static layer
// holds midground then main tiles; the active layer holds goal members,
// remaining items and finally the hero.
func LayerSprites(c CompositeLayer, level *Level, hero *Hero) []Sprite {
	if level == nil {
		return nil
	}
	var out []Sprite
	switch c {
	case CompositeStatic:
		out = appendTiles(out, level.Midground)
		out = appendTiles(out, level.Main)
	case CompositeForeground:
		out = appendTiles(out, level.Foreground)
	case CompositeActive:
		out = appendTiles(out, level.Goal.Members)
		for _, it := range level.Items {
			out = append(out, Sprite{Rect: it.Rect, Item: it.Kind})
		}
		if hero != nil {
			out = append(out, Sprite{Rect: hero.Rect, Hero: true})
		}
	}
	return out
}

func appendTiles(out []Sprite, tiles []Tile) []Sprite {
	for _, t := range tiles {
		out = append(out, Sprite{Rect: t.Rect, Tile: t.Kind})
	}
	return out
}
