package system

import (
	"fmt"
	"io/fs"

	"github.com/milk9111/parkour/obj"
)

// LevelLoader builds the named level.
type LevelLoader func(name string) (*obj.Level, error)

// SearchPathLoader loads levels from disk under levels/ when present and
// from the embedded set otherwise.
func SearchPathLoader(kinds *obj.Kinds) LevelLoader {
	return func(name string) (*obj.Level, error) {
		return obj.LoadLevel(name, kinds)
	}
}

// FSLoader loads levels from fsys only.
func FSLoader(fsys fs.FS, kinds *obj.Kinds) LevelLoader {
	return func(name string) (*obj.Level, error) {
		return obj.LoadLevelFS(fsys, name, kinds)
	}
}

// World owns the current level and its collision index.
type World struct {
	Level          *obj.Level
	CollisionWorld *obj.CollisionWorld

	load  LevelLoader
	probe int
}

func NewWorld(load LevelLoader, probe int) *World {
	return &World{load: load, probe: probe}
}

// SetLoader swaps the loader used by later loads, e.g. after the kinds
// table was reloaded.
func (w *World) SetLoader(load LevelLoader) {
	w.load = load
}

// Load builds a level and replaces the current one. On error the current
// level is left untouched.
func (w *World) Load(levelPath string) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	if levelPath == "" {
		return fmt.Errorf("level path is empty")
	}
	if w.load == nil {
		return fmt.Errorf("world has no level loader")
	}
	lvl, err := w.load(levelPath)
	if err != nil {
		return fmt.Errorf("load level %s: %w", levelPath, err)
	}
	w.Level = lvl
	w.CollisionWorld = obj.NewCollisionWorld(lvl.Solids(), w.probe)
	return nil
}

// Check builds every named level once and reports the first failure.
func (w *World) Check(levelPaths []string) error {
	for _, p := range levelPaths {
		if w.load == nil {
			return fmt.Errorf("world has no level loader")
		}
		if _, err := w.load(p); err != nil {
			return fmt.Errorf("check level %s: %w", p, err)
		}
	}
	return nil
}

// Size returns the world dimensions in pixels, or zero with no level.
func (w *World) Size() (int, int) {
	if w == nil || w.Level == nil {
		return 0, 0
	}
	return w.Level.Width, w.Level.Height
}
