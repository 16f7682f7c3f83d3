package system

import "github.com/milk9111/parkour/obj"

// Spawn puts the hero at rest on the current level's start and snaps the
// camera to it.
func (w *World) Spawn(hero *obj.Hero, camera *obj.Camera) {
	if w == nil || w.Level == nil || hero == nil {
		return
	}
	hero.Spawn(w.Level)
	if camera != nil {
		camera.Reset()
		camera.Follow(hero.Rect, w.Level.Width)
	}
}

// HandleTransition loads levelPath and respawns the hero there. The world is
// unchanged if the level fails to load.
func (w *World) HandleTransition(levelPath string, hero *obj.Hero, camera *obj.Camera) error {
	if err := w.Load(levelPath); err != nil {
		return err
	}
	w.Spawn(hero, camera)
	return nil
}
