package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/obj"
)

const defaultFadeFrames = 20

// Fade runs a fade-from-black every time a different level comes on screen.
type Fade struct {
	Duration int

	frames int
	level  *obj.Level
}

func NewFade(duration int) *Fade {
	if duration <= 0 {
		duration = defaultFadeFrames
	}
	return &Fade{Duration: duration}
}

// Update advances the fade by one frame. A level pointer different from the
// last one seen restarts it; the very first level fades in too.
func (f *Fade) Update(level *obj.Level) {
	if level != f.level {
		f.level = level
		f.frames = f.Duration
		return
	}
	if f.frames > 0 {
		f.frames--
	}
}

// Active reports whether the fade is still covering the screen.
func (f *Fade) Active() bool {
	return f.frames > 0
}

// Alpha is the opacity of the black cover, from 1 right after a load down
// to 0.
func (f *Fade) Alpha() float32 {
	if f.Duration <= 0 || f.frames <= 0 {
		return 0
	}
	return common.Lerp(0, 1, float32(f.frames)/float32(f.Duration))
}

func (f *Fade) Draw(screen *ebiten.Image, palette *Palette) {
	a := f.Alpha()
	if a <= 0 {
		return
	}
	b := screen.Bounds()
	palette.FillRect(screen, common.NewRect(0, 0, b.Dx(), b.Dy()), color.RGBA{A: uint8(a * 0xff)})
}
