package render

import (
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/obj"
	"github.com/milk9111/parkour/system"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{A: 0xff}},
		{"#c8c8c8", color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}},
		{"#2A6FDB", color.RGBA{R: 0x2a, G: 0x6f, B: 0xdb, A: 0xff}},
		{"", fallbackColor},
		{"c8c8c8", fallbackColor},
		{"#c8c8", fallbackColor},
		{"#zzzzzz", fallbackColor},
		{"#c8c8c8ff", fallbackColor},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := parseHexColor(tc.in); got != tc.want {
				t.Fatalf("parseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPaletteColor(t *testing.T) {
	brick := color.RGBA{R: 1, A: 0xff}
	coin := color.RGBA{G: 2, A: 0xff}
	hero := color.RGBA{B: 3, A: 0xff}
	p := &Palette{
		tiles: map[obj.TileKind]color.RGBA{obj.TileBrick: brick},
		items: map[obj.ItemKind]color.RGBA{obj.ItemCoin: coin},
		hero:  hero,
	}

	cases := []struct {
		name   string
		sprite obj.Sprite
		want   color.RGBA
	}{
		{"tile", obj.Sprite{Tile: obj.TileBrick}, brick},
		{"item", obj.Sprite{Item: obj.ItemCoin}, coin},
		{"hero", obj.Sprite{Hero: true}, hero},
		{"unknown tile", obj.Sprite{Tile: obj.TileTruck}, fallbackColor},
		{"unknown item", obj.Sprite{Item: obj.ItemStar}, fallbackColor},
		{"nothing", obj.Sprite{}, fallbackColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Color(tc.sprite); got != tc.want {
				t.Fatalf("Color = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlayLines(t *testing.T) {
	o := &Overlay{Title: "Parkour", Subtitle: "Reach the goal"}

	cases := []struct {
		name  string
		frame system.Frame
		want  []string
	}{
		{"start", system.Frame{Stage: system.StageStart},
			[]string{"Parkour", "Reach the goal", "Press SPACE to start"}},
		{"playing", system.Frame{Stage: system.StagePlaying}, nil},
		{"cleared", system.Frame{Stage: system.StageCleared, LevelIndex: 2, Score: 7},
			[]string{"Level 2 cleared!", "Score: 7"}},
		{"win", system.Frame{Stage: system.StageWin, Score: 12},
			[]string{"You win!", "Final score: 12", "Press SPACE to play again"}},
		{"lose", system.Frame{Stage: system.StageLose, Score: 3},
			[]string{"You fell!", "Score: 3", "Press SPACE to try again"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := o.Lines(tc.frame); !slices.Equal(got, tc.want) {
				t.Fatalf("Lines = %q, want %q", got, tc.want)
			}
		})
	}

	o.Subtitle = ""
	if got := o.Lines(system.Frame{Stage: system.StageStart}); len(got) != 2 {
		t.Fatalf("expected subtitle to be skipped, got %q", got)
	}
}

func TestOverlayHUD(t *testing.T) {
	o := &Overlay{}
	f := system.Frame{Stage: system.StagePlaying, LevelIndex: 2, LevelCount: 3, LevelName: "rooftops", Score: 9}
	if got, want := o.HUD(f), "Level 2/3  rooftops  Score 9"; got != want {
		t.Fatalf("HUD = %q, want %q", got, want)
	}
	for _, st := range []system.Stage{system.StageStart, system.StageWin, system.StageLose} {
		f.Stage = st
		if got := o.HUD(f); got != "" {
			t.Fatalf("%s: HUD = %q, want empty", st, got)
		}
	}
}

func TestFade(t *testing.T) {
	f := NewFade(4)
	if f.Active() || f.Alpha() != 0 {
		t.Fatalf("fresh fade should be idle")
	}

	a := &obj.Level{Name: "a"}
	f.Update(a)
	if !f.Active() || f.Alpha() != 1 {
		t.Fatalf("new level should start fully covered, alpha %v", f.Alpha())
	}
	f.Update(a)
	if got := f.Alpha(); got != 0.75 {
		t.Fatalf("alpha after one frame = %v, want 0.75", got)
	}
	for range 3 {
		f.Update(a)
	}
	if f.Active() || f.Alpha() != 0 {
		t.Fatalf("fade should have finished, alpha %v", f.Alpha())
	}
	f.Update(a)
	if f.Active() {
		t.Fatalf("same level must not restart the fade")
	}

	f.Update(&obj.Level{Name: "b"})
	if !f.Active() {
		t.Fatalf("different level should restart the fade")
	}

	if got := NewFade(0).Duration; got != defaultFadeFrames {
		t.Fatalf("default duration = %d, want %d", got, defaultFadeFrames)
	}
}

func TestDebugText(t *testing.T) {
	h := &obj.Hero{Rect: common.NewRect(10, 20, 48, 60), VX: 5, VY: -3}
	f := system.Frame{Stage: system.StagePlaying, LevelIndex: 1, LevelCount: 3, Offset: -40}
	got := debugText(f, h, 59.6)
	for _, want := range []string{"fps 60", "stage PLAYING", "level 1/3", "hero 10,20 48x60", "v 5,-3", "offset -40"} {
		if !strings.Contains(got, want) {
			t.Fatalf("debugText = %q, missing %q", got, want)
		}
	}
}
