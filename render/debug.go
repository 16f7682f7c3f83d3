package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/parkour/obj"
	"github.com/milk9111/parkour/system"
)

// DebugDraw outlines every solid in the collision index, the hero and the
// ground probe, and prints frame stats in the top-left corner.
func DebugDraw(screen *ebiten.Image, s *system.Session) {
	if screen == nil || s == nil || s.World == nil {
		return
	}
	f := s.Frame()
	offX := float64(-f.Viewport.X)

	if space := s.World.CollisionWorld.Space(); space != nil {
		cp.DrawSpace(space, &chipmunkDrawer{screen: screen, offX: offX})
	}

	h := s.Hero
	heroColor := color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
	if s.World.CollisionWorld.CanJump(h.Rect) {
		heroColor = color.RGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff}
	}
	vector.StrokeRect(screen, float32(float64(h.X)+offX), float32(h.Y), float32(h.W), float32(h.H), 1, heroColor, false)

	ebitenutil.DebugPrintAt(screen, debugText(f, h, ebiten.ActualFPS()), 4, 4)
}

func debugText(f system.Frame, h *obj.Hero, fps float64) string {
	return fmt.Sprintf("fps %.0f  stage %s  level %d/%d\nhero %d,%d %dx%d  v %d,%d  offset %d",
		fps, f.Stage, f.LevelIndex, f.LevelCount,
		h.X, h.Y, h.W, h.H, h.VX, h.VY, f.Offset)
}

type chipmunkDrawer struct {
	screen *ebiten.Image
	offX   float64
}

func (d *chipmunkDrawer) line(a, b cp.Vector, c color.Color) {
	vector.StrokeLine(d.screen, float32(a.X+d.offX), float32(a.Y), float32(b.X+d.offX), float32(b.Y), 1, c, false)
}

func (d *chipmunkDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	steps := 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
}

func (d *chipmunkDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *chipmunkDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
}

func (d *chipmunkDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}
	c := fcolorToRGBA(fill)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *chipmunkDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	l := size / 2
	d.line(cp.Vector{X: pos.X - l, Y: pos.Y}, cp.Vector{X: pos.X + l, Y: pos.Y}, c)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - l}, cp.Vector{X: pos.X, Y: pos.Y + l}, c)
}

func (d *chipmunkDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *chipmunkDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *chipmunkDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *chipmunkDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *chipmunkDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *chipmunkDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
