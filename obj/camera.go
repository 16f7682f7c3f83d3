package obj

import "github.com/milk9111/parkour/common"

// Offset returns the horizontal scroll for an actor centred at
// actorCenterX. It is 0 while the actor is within half a viewport of the
// left edge, -(worldW-viewportW) within half a viewport of the right edge,
// and keeps the actor centred in between. Worlds no wider than the viewport
// never scroll.
func Offset(actorCenterX, viewportW, worldW int) int {
	if worldW <= viewportW {
		return 0
	}
	return -common.Clamp(actorCenterX-viewportW/2, 0, worldW-viewportW)
}

// Viewport is the world-space rectangle visible at the given scroll offset.
func Viewport(offset, w, h int) common.Rect {
	return common.NewRect(-offset, 0, w, h)
}

// Camera tracks the scroll offset for a fixed-size viewport. There is no
// vertical scrolling.
type Camera struct {
	Width  int
	Height int

	offset int
}

func NewCamera(w, h int) *Camera {
	return &Camera{Width: w, Height: h}
}

// Follow recomputes the offset for an actor in a world worldW pixels wide.
func (c *Camera) Follow(actor common.Rect, worldW int) int {
	c.offset = Offset(actor.CenterX(), c.Width, worldW)
	return c.offset
}

func (c *Camera) Offset() int {
	return c.offset
}

// Viewport returns the world rectangle currently on screen.
func (c *Camera) Viewport() common.Rect {
	return Viewport(c.offset, c.Width, c.Height)
}

// Reset scrolls back to the left edge.
func (c *Camera) Reset() {
	c.offset = 0
}
