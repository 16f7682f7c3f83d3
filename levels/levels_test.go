package levels

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestParseGoalForms(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want GoalForm
		chk  func(t *testing.T, g GoalSpec)
	}{
		{
			name: "threshold",
			doc:  "layout: {goal: 2}",
			want: GoalThreshold,
			chk: func(t *testing.T, g GoalSpec) {
				if g.Threshold != 2 {
					t.Fatalf("expected threshold 2, got %v", g.Threshold)
				}
			},
		},
		{
			name: "region",
			doc:  "layout: {goal: [28, 4, 2, 3]}",
			want: GoalRegion,
			chk: func(t *testing.T, g GoalSpec) {
				if g.Region != [4]float64{28, 4, 2, 3} {
					t.Fatalf("unexpected region %v", g.Region)
				}
			},
		},
		{
			name: "item_group",
			doc:  "layout:\n  goal:\n    - [13.5, 5, fridge]\n    - [14, 5, fridge]\n",
			want: GoalItemGroup,
			chk: func(t *testing.T, g GoalSpec) {
				if len(g.Members) != 2 {
					t.Fatalf("expected 2 members, got %d", len(g.Members))
				}
				if g.Members[0] != (Entry{X: 13.5, Y: 5, Kind: "fridge"}) {
					t.Fatalf("unexpected member %+v", g.Members[0])
				}
			},
		},
		{
			name: "json_threshold",
			doc:  `{"layout": {"goal": 3}}`,
			want: GoalThreshold,
			chk:  func(t *testing.T, g GoalSpec) {},
		},
		{
			name: "missing",
			doc:  "layout: {scale: 64}",
			want: GoalUnset,
			chk:  func(t *testing.T, g GoalSpec) {},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			desc, err := Parse(c.name+".yaml", []byte(c.doc))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if desc.Layout.Goal.Form != c.want {
				t.Fatalf("expected form %v, got %v", c.want, desc.Layout.Goal.Form)
			}
			c.chk(t, desc.Layout.Goal)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"region_arity", "layout: {goal: [1, 2, 3]}"},
		{"region_not_numbers", "layout: {goal: [13.5, 6, fridge]}"},
		{"empty_goal_list", "layout: {goal: []}"},
		{"goal_mapping", "layout: {goal: {x: 1}}"},
		{"short_entry", "tiles: {main: [[1, 2]]}"},
		{"entry_not_list", "items: [coin]"},
		{"bad_coordinate", "items: [[a, 2, coin]]"},
		{"size_arity", "layout: {size: [1, 2, 3]}"},
		{"not_yaml", "layout: [\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.name, []byte(c.doc))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrMalformedLevel) {
				t.Fatalf("expected ErrMalformedLevel, got %v", err)
			}
			var mle *MalformedLevelError
			if !errors.As(err, &mle) || mle.Level != c.name {
				t.Fatalf("expected MalformedLevelError for %q, got %v", c.name, err)
			}
		})
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"tiny.yaml": {Data: []byte("layout: {scale: 32, size: [4, 3], start: [0, 1], goal: 1}\ntiles: {main: [[0, 2, concrete]]}\n")},
	}

	desc, err := LoadFromFS(fsys, "levels/tiny")
	if err != nil {
		t.Fatalf("LoadFromFS: %v", err)
	}
	if desc.Name != "tiny" {
		t.Fatalf("expected name derived from file, got %q", desc.Name)
	}
	if desc.Layout.Scale != 32 || desc.Layout.Size != [2]float64{4, 3} {
		t.Fatalf("unexpected layout %+v", desc.Layout)
	}
	if len(desc.Tiles.Main) != 1 || desc.Tiles.Main[0].Kind != "concrete" {
		t.Fatalf("unexpected main tiles %+v", desc.Tiles.Main)
	}

	if _, err := LoadFromFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}

func TestEmbeddedLevelsDecode(t *testing.T) {
	for _, name := range []string{"level1.yaml", "level2.yaml", "level3.yaml"} {
		t.Run(name, func(t *testing.T) {
			desc, err := LoadFromFS(LevelsFS, name)
			if err != nil {
				t.Fatalf("LoadFromFS: %v", err)
			}
			if desc.Layout.Goal.Form == GoalUnset {
				t.Fatalf("embedded level %s has no goal", name)
			}
			if len(desc.Tiles.Main) == 0 {
				t.Fatalf("embedded level %s has no main tiles", name)
			}
		})
	}
}
