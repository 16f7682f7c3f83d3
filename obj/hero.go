package obj

import (
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/prefabs"
)

// Hero is the player-controlled actor. It is created once per session and
// repositioned, not recreated, when a level loads.
type Hero struct {
	common.Rect

	VX, VY    int
	Speed     int
	JumpPower int

	ReachedGoal bool
}

// StepResult reports what happened during one kinematics step.
type StepResult struct {
	Picked     []Item
	Points     int
	Landed     bool
	BumpedHead bool
}

func NewHero(spec prefabs.HeroSpec) *Hero {
	return &Hero{
		Rect:      common.NewRect(0, 0, spec.Width, spec.Height),
		Speed:     spec.Speed,
		JumpPower: spec.JumpPower,
	}
}

func (h *Hero) MoveLeft()  { h.VX = -h.Speed }
func (h *Hero) MoveRight() { h.VX = h.Speed }
func (h *Hero) Stop()      { h.VX = 0 }

// Jump starts a jump when the hero is standing on a solid. Otherwise it does
// nothing; jumps are never buffered.
func (h *Hero) Jump(world *CollisionWorld) bool {
	if !world.CanJump(h.Rect) {
		return false
	}
	h.VY = -h.JumpPower
	return true
}

// Place moves the hero's top-left corner to (x, y).
func (h *Hero) Place(x, y int) {
	h.X = x
	h.Y = y
}

// ResetMotion zeroes velocity and clears the goal flag.
func (h *Hero) ResetMotion() {
	h.VX = 0
	h.VY = 0
	h.ReachedGoal = false
}

// Spawn puts the hero at the level start at rest.
func (h *Hero) Spawn(level *Level) {
	h.Place(level.StartX, level.StartY)
	h.ResetMotion()
}

// Step advances the hero one frame: gravity, horizontal resolve, vertical
// resolve, item pickup, world edge clamp and finally the goal check.
func (h *Hero) Step(level *Level, world *CollisionWorld) StepResult {
	var res StepResult

	h.VY = min(h.VY+level.Physics.Gravity, level.Physics.TerminalVelocity)

	h.Rect, _ = world.ResolveX(h.Rect, h.VX)

	var hit bool
	dy := h.VY
	h.Rect, hit = world.ResolveY(h.Rect, dy)
	if hit {
		res.Landed = dy > 0
		res.BumpedHead = dy < 0
		h.VY = 0
	}

	res.Picked = level.TakeItems(h.Rect)
	for _, it := range res.Picked {
		res.Points += it.Value
	}

	if h.Left() < 0 {
		h.SetLeft(0)
	}
	if h.Right() > level.Width {
		h.SetRight(level.Width)
	}

	h.ReachedGoal = level.Goal.Reached(h.Rect)
	return res
}
