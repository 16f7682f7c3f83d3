package obj

import (
	"slices"
	"testing"

	"github.com/milk9111/parkour/common"
)

func TestCompositeOrder(t *testing.T) {
	want := []CompositeLayer{CompositeBackground, CompositeStatic, CompositeActive, CompositeForeground}
	if !slices.Equal(CompositeOrder, want) {
		t.Fatalf("unexpected composite order %v", CompositeOrder)
	}
	for _, c := range CompositeOrder {
		if got, want := c.Prebaked(), c == CompositeStatic || c == CompositeForeground; got != want {
			t.Fatalf("%s: Prebaked() = %v", c, got)
		}
	}
}

func TestLayerSprites(t *testing.T) {
	lvl := flatLevel(400, 300, 200)
	lvl.Midground = []Tile{{Rect: common.NewRect(0, 0, 10, 10), Kind: TileBrick, Layer: LayerMidground}}
	lvl.Foreground = []Tile{{Rect: common.NewRect(50, 0, 10, 10), Kind: TileCrate, Layer: LayerForeground}}
	lvl.Items = []Item{{Rect: common.NewRect(20, 20, 5, 5), Kind: ItemCoin, Value: 1}}
	lvl.Goal = Goal{Kind: GoalItemGroup, Members: []Tile{{Rect: common.NewRect(380, 180, 10, 20), Kind: TileFridge}}}
	hero := newTestHero(30, 180)

	cases := []struct {
		name  string
		layer CompositeLayer
		want  []Sprite
	}{
		{"background", CompositeBackground, nil},
		{"static", CompositeStatic, []Sprite{
			{Rect: lvl.Midground[0].Rect, Tile: TileBrick},
			{Rect: lvl.Main[0].Rect, Tile: TileConcrete},
		}},
		{"active", CompositeActive, []Sprite{
			{Rect: lvl.Goal.Members[0].Rect, Tile: TileFridge},
			{Rect: lvl.Items[0].Rect, Item: ItemCoin},
			{Rect: hero.Rect, Hero: true},
		}},
		{"foreground", CompositeForeground, []Sprite{
			{Rect: lvl.Foreground[0].Rect, Tile: TileCrate},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LayerSprites(c.layer, lvl, hero)
			if !slices.Equal(got, c.want) {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventItemSound})
	q.Push(Event{Kind: EventGoalSound})
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Kind != EventItemSound || got[1].Kind != EventGoalSound {
		t.Fatalf("unexpected drain order %+v", got)
	}
	if q.Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}

	var nilQ *EventQueue
	nilQ.Push(Event{Kind: EventStage})
	if nilQ.Len() != 0 {
		t.Fatalf("nil queue should stay empty")
	}
}

func TestInputMoveX(t *testing.T) {
	cases := []struct {
		in   Input
		want int
	}{
		{Input{}, 0},
		{Input{Left: true}, -1},
		{Input{Right: true}, 1},
		{Input{Left: true, Right: true}, 0},
	}
	for _, c := range cases {
		if got := c.in.MoveX(); got != c.want {
			t.Fatalf("MoveX(%+v) = %d, want %d", c.in, got, c.want)
		}
	}
}
