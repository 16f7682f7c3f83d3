package assets

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sounds plays named one-shot effects. A sound that failed to load is
// skipped silently after the load error was logged.
type Sounds struct {
	players map[string]*audio.Player
	logger  *log.Logger
}

func NewSounds(logger *log.Logger, names ...string) *Sounds {
	s := &Sounds{players: make(map[string]*audio.Player, len(names)), logger: logger}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := s.players[name]; ok {
			continue
		}
		p, err := LoadAudioPlayer(name)
		if err != nil {
			if logger != nil {
				logger.Warn("sound unavailable", "sound", name, "error", err)
			}
			continue
		}
		s.players[name] = p
	}
	return s
}

// Play restarts the named sound from the beginning.
func (s *Sounds) Play(name string) {
	if s == nil {
		return
	}
	p, ok := s.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil && s.logger != nil {
		s.logger.Warn("rewind sound", "sound", name, "error", err)
		return
	}
	p.Play()
}
