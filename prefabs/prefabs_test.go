package prefabs

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if spec.FPS != 60 {
		t.Fatalf("expected 60 fps, got %d", spec.FPS)
	}
	if got := spec.ClearedFrames(); got != 120 {
		t.Fatalf("expected 120 cleared frames, got %d", got)
	}
	if len(spec.Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(spec.Levels))
	}
	if spec.Hero.ProbeDistance != 2 {
		t.Fatalf("expected probe distance 2, got %d", spec.Hero.ProbeDistance)
	}
}

func TestLoadKindsSpec(t *testing.T) {
	spec, err := LoadKindsSpec()
	if err != nil {
		t.Fatalf("LoadKindsSpec: %v", err)
	}
	car, ok := spec.Tiles["car"]
	if !ok {
		t.Fatalf("car kind missing")
	}
	if car.Size != [2]float64{2, 1} {
		t.Fatalf("unexpected car size %v", car.Size)
	}
	if spec.Items["gem"].Value != 5 {
		t.Fatalf("expected gem value 5, got %d", spec.Items["gem"].Value)
	}
}

func TestGameSpecValidate(t *testing.T) {
	valid := GameSpec{
		FPS:      60,
		Viewport: [2]int{1024, 576},
		Hero:     HeroSpec{Width: 48, Height: 60},
		Levels:   []string{"level1.yaml"},
	}
	cases := []struct {
		name    string
		mutate  func(g *GameSpec)
		wantErr bool
	}{
		{"valid", func(g *GameSpec) {}, false},
		{"zero_fps", func(g *GameSpec) { g.FPS = 0 }, true},
		{"zero_viewport", func(g *GameSpec) { g.Viewport = [2]int{0, 576} }, true},
		{"negative_cleared", func(g *GameSpec) { g.ClearedSeconds = -1 }, true},
		{"no_hero_size", func(g *GameSpec) { g.Hero.Width = 0 }, true},
		{"no_levels", func(g *GameSpec) { g.Levels = nil }, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := valid
			g.Levels = append([]string(nil), valid.Levels...)
			c.mutate(&g)
			err := g.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("Validate() err=%v, wantErr=%v", err, c.wantErr)
			}
		})
	}
}

func TestWatcherRelevance(t *testing.T) {
	cases := []struct {
		name string
		evt  fsnotify.Event
		want bool
	}{
		{"yaml_write", fsnotify.Event{Name: "levels/level1.yaml", Op: fsnotify.Write}, true},
		{"json_create", fsnotify.Event{Name: "levels/extra.JSON", Op: fsnotify.Create}, true},
		{"yaml_chmod", fsnotify.Event{Name: "levels/level1.yaml", Op: fsnotify.Chmod}, false},
		{"yaml_remove", fsnotify.Event{Name: "levels/level1.yaml", Op: fsnotify.Remove}, false},
		{"swap_file", fsnotify.Event{Name: "levels/.level1.yaml.swp", Op: fsnotify.Write}, false},
		{"go_file", fsnotify.Event{Name: "prefabs/spec.go", Op: fsnotify.Write}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := relevant(c.evt); got != c.want {
				t.Fatalf("relevant(%v) = %v, want %v", c.evt, got, c.want)
			}
		})
	}
}

func TestWatcherPollEmpty(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("expected no events, got %v", got)
	}
}
