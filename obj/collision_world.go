package obj

import (
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/parkour/common"
)

// DefaultProbeDistance is how far below the hero the ground probe reaches.
const DefaultProbeDistance = 2

// Axis selects which component of a move is being resolved.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// CollisionWorld answers overlap queries against the solid tiles of a level.
// The cp space is used only as a static bounding box index; resolution
// itself is done here on integer rects.
type CollisionWorld struct {
	space  *cp.Space
	solids []common.Rect
	probe  int
}

// NewCollisionWorld indexes solids. Zero-area rects never collide and are
// skipped.
func NewCollisionWorld(solids []common.Rect, probe int) *CollisionWorld {
	if probe <= 0 {
		probe = DefaultProbeDistance
	}
	cw := &CollisionWorld{
		space:  cp.NewSpace(),
		solids: slices.Clone(solids),
		probe:  probe,
	}
	for i, s := range cw.solids {
		if s.Empty() {
			continue
		}
		shape := cp.NewBox2(cw.space.StaticBody, rectBB(s), 0)
		shape.UserData = i
		cw.space.AddShape(shape)
	}
	return cw
}

func rectBB(r common.Rect) cp.BB {
	return cp.BB{
		L: float64(r.Left()),
		B: float64(r.Top()),
		R: float64(r.Right()),
		T: float64(r.Bottom()),
	}
}

// candidates returns the indices of solids whose boxes touch area, in
// ascending order so resolution is deterministic.
func (cw *CollisionWorld) candidates(area common.Rect) []int {
	if cw == nil || cw.space == nil {
		return nil
	}
	var out []int
	cw.space.BBQuery(rectBB(area), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if idx, ok := shape.UserData.(int); ok {
			out = append(out, idx)
		}
	}, nil)
	slices.Sort(out)
	return slices.Compact(out)
}

// Overlapping returns every solid that strictly overlaps r.
func (cw *CollisionWorld) Overlapping(r common.Rect) []common.Rect {
	var out []common.Rect
	for _, idx := range cw.candidates(r) {
		if s := cw.solids[idx]; s.Overlaps(r) {
			out = append(out, s)
		}
	}
	return out
}

// CanJump reports whether r, pushed down by the probe distance, would
// overlap a solid. r itself is not changed.
func (cw *CollisionWorld) CanJump(r common.Rect) bool {
	return len(cw.Overlapping(r.Offset(0, cw.probe))) > 0
}

// ResolveX moves r horizontally by dx and pushes it back out of any solid it
// ran into. The returned bool is true when at least one solid was hit.
func (cw *CollisionWorld) ResolveX(r common.Rect, dx int) (common.Rect, bool) {
	return cw.ResolveAxis(r, AxisX, dx)
}

// ResolveY is ResolveX for the vertical axis.
func (cw *CollisionWorld) ResolveY(r common.Rect, dy int) (common.Rect, bool) {
	return cw.ResolveAxis(r, AxisY, dy)
}

// ResolveAxis moves r by d along axis and snaps the leading edge to the near
// face of each solid hit. Solids lying between the start and end positions
// count as hits, so a large step cannot pass through a thin tile. Each
// candidate is tested against the rect as already corrected by earlier hits.
func (cw *CollisionWorld) ResolveAxis(r common.Rect, axis Axis, d int) (common.Rect, bool) {
	if d == 0 {
		return r, false
	}
	var moved common.Rect
	if axis == AxisX {
		moved = r.Offset(d, 0)
	} else {
		moved = r.Offset(0, d)
	}

	collided := false
	for _, idx := range cw.candidates(r.Union(moved)) {
		s := cw.solids[idx]
		if !blocks(s, r, moved, axis, d) {
			continue
		}
		collided = true
		switch {
		case axis == AxisX && d > 0:
			moved.SetRight(s.Left())
		case axis == AxisX:
			moved.SetLeft(s.Right())
		case d > 0:
			moved.SetBottom(s.Top())
		default:
			moved.SetTop(s.Bottom())
		}
	}
	return moved, collided
}

// blocks reports whether s stops a move from r to moved. s blocks when it
// overlaps the current position or lies in the swept gap ahead of r.
func blocks(s, r, moved common.Rect, axis Axis, d int) bool {
	if s.Overlaps(moved) {
		return true
	}
	if axis == AxisX {
		if s.Bottom() <= moved.Top() || s.Top() >= moved.Bottom() {
			return false
		}
		if d > 0 {
			return s.Left() >= r.Right() && s.Left() < moved.Right()
		}
		return s.Right() <= r.Left() && s.Right() > moved.Left()
	}
	if s.Right() <= moved.Left() || s.Left() >= moved.Right() {
		return false
	}
	if d > 0 {
		return s.Top() >= r.Bottom() && s.Top() < moved.Bottom()
	}
	return s.Bottom() <= r.Top() && s.Bottom() > moved.Top()
}

// Space exposes the underlying static index for debug drawing.
func (cw *CollisionWorld) Space() *cp.Space {
	if cw == nil {
		return nil
	}
	return cw.space
}
