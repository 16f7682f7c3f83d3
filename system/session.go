package system

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/obj"
	"github.com/milk9111/parkour/prefabs"
)

// Stage is the coarse state of a play session.
type Stage int

const (
	StageStart Stage = iota
	StagePlaying
	StageCleared
	StageWin
	StageLose
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "START"
	case StagePlaying:
		return "PLAYING"
	case StageCleared:
		return "CLEARED"
	case StageWin:
		return "WIN"
	case StageLose:
		return "LOSE"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Config is the session tuning, usually taken from game.yaml.
type Config struct {
	// Levels are played in order. LevelIndex 1 is Levels[0].
	Levels []string
	// ClearedFrames is how many updates CLEARED lasts before advancing.
	ClearedFrames int
	// DeathMargin enables LOSE when positive: the hero loses once its top
	// is more than DeathMargin pixels below the bottom of the world.
	DeathMargin int
	// FirstLevel is the 1-based level the session starts on. Zero means 1.
	FirstLevel int
	Viewport   [2]int
}

// ConfigFromSpec maps game.yaml onto a session Config.
func ConfigFromSpec(spec *prefabs.GameSpec) Config {
	return Config{
		Levels:        append([]string(nil), spec.Levels...),
		ClearedFrames: spec.ClearedFrames(),
		DeathMargin:   spec.DeathMargin,
		FirstLevel:    1,
		Viewport:      spec.Viewport,
	}
}

// Frame is what the platform layer needs to draw one frame.
type Frame struct {
	Stage      Stage
	Offset     int
	Viewport   common.Rect
	Score      int
	LevelIndex int
	LevelCount int
	LevelName  string
	// ClearedProgress runs from 0 to 1 over the CLEARED countdown.
	ClearedProgress float32
}

// Session is the single owner of all mutable game state. It is driven by
// Update once per frame.
type Session struct {
	Stage        Stage
	LevelIndex   int
	Score        int
	ClearedTimer int

	Hero   *obj.Hero
	World  *World
	Camera *obj.Camera
	Events obj.EventQueue

	cfg    Config
	logger *log.Logger
}

// NewSession checks every configured level, loads the first one and leaves
// the session in START. logger may be nil.
func NewSession(cfg Config, world *World, hero *obj.Hero, logger *log.Logger) (*Session, error) {
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("session: no levels configured")
	}
	if cfg.FirstLevel == 0 {
		cfg.FirstLevel = 1
	}
	if cfg.FirstLevel < 1 || cfg.FirstLevel > len(cfg.Levels) {
		return nil, fmt.Errorf("session: level %d out of range 1..%d", cfg.FirstLevel, len(cfg.Levels))
	}
	if cfg.ClearedFrames < 0 {
		return nil, fmt.Errorf("session: cleared frames must not be negative")
	}
	if world == nil || hero == nil {
		return nil, fmt.Errorf("session: world and hero are required")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := world.Check(cfg.Levels); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		Stage:  StageStart,
		Hero:   hero,
		World:  world,
		Camera: obj.NewCamera(cfg.Viewport[0], cfg.Viewport[1]),
		cfg:    cfg,
		logger: logger,
	}
	if err := s.loadLevel(cfg.FirstLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// LevelCount is the number of configured levels.
func (s *Session) LevelCount() int {
	return len(s.cfg.Levels)
}

// LevelFile is the level document name for the current level.
func (s *Session) LevelFile() string {
	return s.cfg.Levels[s.LevelIndex-1]
}

func (s *Session) loadLevel(index int) error {
	name := s.cfg.Levels[index-1]
	if err := s.World.HandleTransition(name, s.Hero, s.Camera); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.LevelIndex = index
	lvl := s.World.Level
	s.logger.Debug("level loaded",
		"index", index,
		"file", name,
		"name", lvl.Name,
		"width", lvl.Width,
		"height", lvl.Height,
		"goal", lvl.Goal.Kind,
		"items", len(lvl.Items),
	)
	return nil
}

func (s *Session) setStage(next Stage) {
	if s.Stage == next {
		return
	}
	s.logger.Info("stage", "from", s.Stage, "to", next, "level", s.LevelIndex, "score", s.Score)
	s.Stage = next
	s.Events.Push(obj.Event{Kind: obj.EventStage, Data: next})
}

// Begin starts play from the title stage.
func (s *Session) Begin() {
	if s.Stage != StageStart {
		panic(fmt.Sprintf("session: Begin called in %s, want %s", s.Stage, StageStart))
	}
	s.setStage(StagePlaying)
}

// Advance leaves CLEARED for the next level, or for WIN after the last one.
// A level that fails to load ends the session in LOSE.
func (s *Session) Advance() error {
	if s.Stage != StageCleared {
		panic(fmt.Sprintf("session: Advance called in %s, want %s", s.Stage, StageCleared))
	}
	if s.LevelIndex >= len(s.cfg.Levels) {
		s.setStage(StageWin)
		return nil
	}
	if err := s.loadLevel(s.LevelIndex + 1); err != nil {
		s.setStage(StageLose)
		return err
	}
	s.ClearedTimer = 0
	s.setStage(StagePlaying)
	return nil
}

// Restart resets score and level and starts playing level 1.
func (s *Session) Restart() error {
	if s.Stage != StageWin && s.Stage != StageLose {
		panic(fmt.Sprintf("session: Restart called in %s, want %s or %s", s.Stage, StageWin, StageLose))
	}
	if err := s.loadLevel(1); err != nil {
		return err
	}
	s.Score = 0
	s.ClearedTimer = 0
	s.setStage(StagePlaying)
	return nil
}

// Update runs one frame. It returns false once quit was requested; the frame
// is still completed first.
func (s *Session) Update(in obj.Input) bool {
	switch s.Stage {
	case StageStart:
		if in.Confirm {
			s.Begin()
		}
	case StagePlaying:
		s.play(in)
	case StageCleared:
		s.ClearedTimer--
		if s.ClearedTimer <= 0 {
			if err := s.Advance(); err != nil {
				s.logger.Error("advance failed", "error", err)
			}
		}
	case StageWin, StageLose:
		if in.Confirm {
			if err := s.Restart(); err != nil {
				s.logger.Error("restart failed", "error", err)
			}
		}
	}
	return !in.Quit
}

func (s *Session) play(in obj.Input) {
	h := s.Hero
	switch in.MoveX() {
	case -1:
		h.MoveLeft()
	case 1:
		h.MoveRight()
	default:
		h.Stop()
	}
	if in.Confirm {
		h.Jump(s.World.CollisionWorld)
	}

	lvl := s.World.Level
	res := h.Step(lvl, s.World.CollisionWorld)
	for _, it := range res.Picked {
		s.Events.Push(obj.Event{Kind: obj.EventItemSound, Data: it.Kind})
	}
	s.Score += res.Points
	s.Camera.Follow(h.Rect, lvl.Width)

	switch {
	case h.ReachedGoal:
		s.ClearedTimer = s.cfg.ClearedFrames
		s.Events.Push(obj.Event{Kind: obj.EventGoalSound})
		s.setStage(StageCleared)
	case s.cfg.DeathMargin > 0 && h.Top() > lvl.Height+s.cfg.DeathMargin:
		s.setStage(StageLose)
	}
}

// Reload rebuilds the current level after its document changed on disk.
// changed is the path reported by the watcher; an empty path always
// matches. Reloads only happen in START and PLAYING; later stages pick the
// new document up on their next load anyway.
func (s *Session) Reload(changed string) error {
	if changed != "" && filepath.Base(changed) != filepath.Base(s.LevelFile()) {
		return nil
	}
	if s.Stage != StageStart && s.Stage != StagePlaying {
		s.logger.Debug("reload deferred", "file", changed, "stage", s.Stage)
		return nil
	}
	if err := s.loadLevel(s.LevelIndex); err != nil {
		return err
	}
	s.logger.Info("level reloaded", "file", s.LevelFile())
	return nil
}

// Frame summarises the session for drawing.
func (s *Session) Frame() Frame {
	f := Frame{
		Stage:      s.Stage,
		Offset:     s.Camera.Offset(),
		Score:      s.Score,
		LevelIndex: s.LevelIndex,
		LevelCount: len(s.cfg.Levels),
		Viewport:   s.Camera.Viewport(),
	}
	if s.World.Level != nil {
		f.LevelName = s.World.Level.Name
	}
	if s.Stage == StageCleared && s.cfg.ClearedFrames > 0 {
		f.ClearedProgress = 1 - float32(max(s.ClearedTimer, 0))/float32(s.cfg.ClearedFrames)
	}
	return f
}
