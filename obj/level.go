package obj

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/levels"
)

const (
	defaultGravity          = 1
	defaultTerminalVelocity = 24
)

// ErrMalformedLevel is returned, wrapped, for every rejected level.
var ErrMalformedLevel = levels.ErrMalformedLevel

type MalformedLevelError = levels.MalformedLevelError

type LayerKind int

const (
	LayerMidground LayerKind = iota
	LayerMain
	LayerForeground
)

func (l LayerKind) String() string {
	switch l {
	case LayerMidground:
		return "midground"
	case LayerMain:
		return "main"
	case LayerForeground:
		return "foreground"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// Tile is static level geometry. Only main-layer tiles collide.
type Tile struct {
	common.Rect
	Kind  TileKind
	Layer LayerKind
}

// Item is a collectible worth a flat number of points.
type Item struct {
	common.Rect
	Kind  ItemKind
	Value int
}

// Physics is the per-level kinematics tuning, in pixels per frame.
type Physics struct {
	Gravity          int
	TerminalVelocity int
}

type GoalKind int

const (
	GoalItemGroup GoalKind = iota + 1
	GoalRegion
	GoalThreshold
)

func (k GoalKind) String() string {
	switch k {
	case GoalItemGroup:
		return "item_group"
	case GoalRegion:
		return "region"
	case GoalThreshold:
		return "threshold"
	default:
		return fmt.Sprintf("goal(%d)", int(k))
	}
}

// Goal is the condition that clears a level. Only the field matching Kind is
// meaningful.
type Goal struct {
	Kind       GoalKind
	Members    []Tile
	Region     common.Rect
	ThresholdX int
}

// Reached evaluates the goal against the hero's rect.
func (g Goal) Reached(r common.Rect) bool {
	switch g.Kind {
	case GoalItemGroup:
		for _, m := range g.Members {
			if r.Overlaps(m.Rect) {
				return true
			}
		}
		return false
	case GoalRegion:
		return g.Region.Contains(r)
	case GoalThreshold:
		return r.Left() > g.ThresholdX
	default:
		return false
	}
}

// Level is a built, immutable level plus its remaining items.
type Level struct {
	Name   string
	Width  int
	Height int
	Scale  float64

	Physics Physics
	StartX  int
	StartY  int

	Midground  []Tile
	Main       []Tile
	Foreground []Tile
	Items      []Item
	Goal       Goal
}

// LoadLevel reads the named level document and builds it.
func LoadLevel(name string, kinds *Kinds) (*Level, error) {
	desc, err := levels.Load(name)
	if err != nil {
		return nil, err
	}
	return BuildLevel(desc, kinds)
}

// LoadLevelFS is LoadLevel reading from fsys instead of the level search
// path.
func LoadLevelFS(fsys fs.FS, name string, kinds *Kinds) (*Level, error) {
	desc, err := levels.LoadFromFS(fsys, name)
	if err != nil {
		return nil, err
	}
	return BuildLevel(desc, kinds)
}

// BuildLevel converts a level document into world-pixel geometry. Every
// coordinate is multiplied by the document's scale. No Level is returned
// unless the whole document is valid.
func BuildLevel(desc *levels.Description, kinds *Kinds) (*Level, error) {
	if desc == nil {
		return nil, &MalformedLevelError{Reason: "no document"}
	}
	b := builder{name: desc.Name, scale: desc.Layout.Scale, kinds: kinds}
	if b.scale <= 0 || math.IsNaN(b.scale) {
		return nil, b.fail("scale must be positive, got %v", desc.Layout.Scale)
	}

	lvl := &Level{
		Name:   desc.Name,
		Width:  b.px(desc.Layout.Size[0]),
		Height: b.px(desc.Layout.Size[1]),
		Scale:  b.scale,
		StartX: b.px(desc.Layout.Start[0]),
		StartY: b.px(desc.Layout.Start[1]),
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, b.fail("world size must be positive, got %vx%v", desc.Layout.Size[0], desc.Layout.Size[1])
	}

	physics, err := b.physics(desc.Physics)
	if err != nil {
		return nil, err
	}
	lvl.Physics = physics

	if lvl.Midground, err = b.tiles(desc.Tiles.Midground, LayerMidground); err != nil {
		return nil, err
	}
	if lvl.Main, err = b.tiles(desc.Tiles.Main, LayerMain); err != nil {
		return nil, err
	}
	if lvl.Foreground, err = b.tiles(desc.Tiles.Foreground, LayerForeground); err != nil {
		return nil, err
	}
	if lvl.Items, err = b.items(desc.Items); err != nil {
		return nil, err
	}
	if lvl.Goal, err = b.goal(desc.Layout.Goal, lvl.Width); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Bounds is the world rectangle.
func (l *Level) Bounds() common.Rect {
	return common.Rect{W: l.Width, H: l.Height}
}

// Solids returns the rects of the main-layer tiles.
func (l *Level) Solids() []common.Rect {
	out := make([]common.Rect, len(l.Main))
	for i, t := range l.Main {
		out[i] = t.Rect
	}
	return out
}

// TakeItems removes every item overlapping r from the level and returns
// them. A removed item can never be returned again.
func (l *Level) TakeItems(r common.Rect) []Item {
	var taken []Item
	kept := l.Items[:0]
	for _, it := range l.Items {
		if r.Overlaps(it.Rect) {
			taken = append(taken, it)
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(l.Items); i++ {
		l.Items[i] = Item{}
	}
	l.Items = kept
	return taken
}

type builder struct {
	name  string
	scale float64
	kinds *Kinds
}

func (b builder) fail(format string, args ...any) error {
	return &MalformedLevelError{Level: b.name, Reason: fmt.Sprintf(format, args...)}
}

// px converts tile units to world pixels.
func (b builder) px(v float64) int {
	return int(math.Round(v * b.scale))
}

func (b builder) physics(p levels.Physics) (Physics, error) {
	if p.Gravity == 0 && p.TerminalVelocity == 0 {
		return Physics{Gravity: defaultGravity, TerminalVelocity: defaultTerminalVelocity}, nil
	}
	if p.Gravity < 0 {
		return Physics{}, b.fail("gravity must not be negative, got %v", p.Gravity)
	}
	if p.TerminalVelocity <= 0 {
		return Physics{}, b.fail("terminal_velocity must be positive, got %v", p.TerminalVelocity)
	}
	return Physics{
		Gravity:          int(math.Round(p.Gravity)),
		TerminalVelocity: int(math.Round(p.TerminalVelocity)),
	}, nil
}

func (b builder) tile(e levels.Entry, layer LayerKind) (Tile, error) {
	kind, ok := ParseTileKind(e.Kind)
	if !ok {
		return Tile{}, b.fail("unknown tile kind %q in %s layer", e.Kind, layer)
	}
	info, ok := b.kinds.Tile(kind)
	if !ok {
		return Tile{}, b.fail("tile kind %q has no entry in the kinds table", e.Kind)
	}
	return Tile{
		Rect:  common.NewRect(b.px(e.X), b.px(e.Y), b.px(info.W), b.px(info.H)),
		Kind:  kind,
		Layer: layer,
	}, nil
}

func (b builder) tiles(entries []levels.Entry, layer LayerKind) ([]Tile, error) {
	out := make([]Tile, 0, len(entries))
	for _, e := range entries {
		t, err := b.tile(e, layer)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (b builder) items(entries []levels.Entry) ([]Item, error) {
	out := make([]Item, 0, len(entries))
	for _, e := range entries {
		kind, ok := ParseItemKind(e.Kind)
		if !ok {
			return nil, b.fail("unknown item kind %q", e.Kind)
		}
		info, ok := b.kinds.Item(kind)
		if !ok {
			return nil, b.fail("item kind %q has no entry in the kinds table", e.Kind)
		}
		out = append(out, Item{
			Rect:  common.NewRect(b.px(e.X), b.px(e.Y), b.px(info.W), b.px(info.H)),
			Kind:  kind,
			Value: info.Value,
		})
	}
	return out, nil
}

func (b builder) goal(spec levels.GoalSpec, worldW int) (Goal, error) {
	switch spec.Form {
	case levels.GoalThreshold:
		return Goal{Kind: GoalThreshold, ThresholdX: worldW - b.px(spec.Threshold)}, nil
	case levels.GoalRegion:
		r := spec.Region
		region := common.NewRect(b.px(r[0]), b.px(r[1]), b.px(r[2]), b.px(r[3]))
		if region.Empty() {
			return Goal{}, b.fail("goal region must have positive size, got %v", r)
		}
		return Goal{Kind: GoalRegion, Region: region}, nil
	case levels.GoalItemGroup:
		members, err := b.tiles(spec.Members, LayerMain)
		if err != nil {
			return Goal{}, err
		}
		return Goal{Kind: GoalItemGroup, Members: members}, nil
	default:
		return Goal{}, b.fail("level has no goal")
	}
}
