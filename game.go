package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parkour/assets"
	"github.com/milk9111/parkour/obj"
	"github.com/milk9111/parkour/prefabs"
	"github.com/milk9111/parkour/render"
	"github.com/milk9111/parkour/system"
)

// GameOptions are the command line choices that shape a run.
type GameOptions struct {
	Level  int
	Debug  bool
	Watch  bool
	Logger *log.Logger
}

type Game struct {
	spec    *prefabs.GameSpec
	session *system.Session
	sounds  *assets.Sounds
	watcher *prefabs.Watcher
	logger  *log.Logger

	palette    *render.Palette
	compositor *render.Compositor
	overlay    *render.Overlay
	fade       *render.Fade

	debug   bool
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(spec *prefabs.GameSpec, opts GameOptions) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	kinds, err := obj.LoadKinds()
	if err != nil {
		return nil, err
	}

	world := system.NewWorld(system.SearchPathLoader(kinds), spec.Hero.ProbeDistance)
	hero := obj.NewHero(spec.Hero)
	cfg := system.ConfigFromSpec(spec)
	cfg.FirstLevel = opts.Level

	session, err := system.NewSession(cfg, world, hero, logger)
	if err != nil {
		return nil, err
	}

	palette := render.NewPalette(kinds, spec.Hero.Color)
	g := &Game{
		spec:       spec,
		session:    session,
		sounds:     assets.NewSounds(logger, spec.Audio.Item, spec.Audio.Goal),
		logger:     logger,
		palette:    palette,
		compositor: render.NewCompositor(palette, spec.Background),
		overlay:    render.NewOverlay(spec.Title, spec.Subtitle, palette),
		fade:       render.NewFade(spec.FPS / 3),
		debug:      opts.Debug,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("levels", "prefabs")
		if err != nil {
			logger.Warn("hot reload disabled", "error", err)
		} else {
			g.watcher = w
			logger.Info("watching for level changes", "dirs", []string{"levels", "prefabs"})
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if pausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		if ebiten.IsWindowBeingClosed() {
			g.quit = true
		}
		return nil
	}

	g.reload()

	running := g.session.Update(pollInput())
	g.playEvents()
	g.fade.Update(g.session.World.Level)

	if !running {
		g.quit = true
		return ebiten.Termination
	}
	return nil
}

func (g *Game) playEvents() {
	for _, evt := range g.session.Events.Drain() {
		switch evt.Kind {
		case obj.EventItemSound:
			g.sounds.Play(g.spec.Audio.Item)
		case obj.EventGoalSound:
			g.sounds.Play(g.spec.Audio.Goal)
		}
	}
}

// reload applies file changes reported by the watcher between frames.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.logger.Warn("watcher", "error", err)
	default:
	}

	for _, path := range g.watcher.Poll() {
		switch filepath.Base(path) {
		case "kinds.yaml":
			g.reloadKinds()
		case "game.yaml":
			g.logger.Warn("game.yaml changed, restart to apply", "file", path)
		default:
			if err := g.session.Reload(path); err != nil {
				g.logger.Error("reload failed, keeping previous level", "file", path, "error", err)
			}
		}
	}
}

func (g *Game) reloadKinds() {
	kinds, err := obj.LoadKinds()
	if err != nil {
		g.logger.Error("reload kinds failed", "error", err)
		return
	}
	g.session.World.SetLoader(system.SearchPathLoader(kinds))
	g.compositor.Load(nil)
	g.palette = render.NewPalette(kinds, g.spec.Hero.Color)
	g.compositor = render.NewCompositor(g.palette, g.spec.Background)
	g.overlay = render.NewOverlay(g.spec.Title, g.spec.Subtitle, g.palette)
	if err := g.session.Reload(""); err != nil {
		g.logger.Error("reload failed, keeping previous level", "error", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Frame()
	g.compositor.Draw(screen, g.session.World.Level, g.session.Hero, f.Viewport)
	g.overlay.Draw(screen, f)
	g.fade.Draw(screen, g.palette)

	if g.debug {
		render.DebugDraw(screen, g.session)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Viewport[0]), float64(g.spec.Viewport[1])
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
