package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/system"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayScale   = 3
	hudScale       = 2
	clearedDimMax  = 0.5
	overlayPadding = 12
)

var (
	textColor  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	lightColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	endDim     = color.RGBA{A: 0x80}
)

// Overlay draws the per-stage text on top of the composited world.
type Overlay struct {
	Title    string
	Subtitle string

	face    ebtext.Face
	palette *Palette
}

func NewOverlay(title, subtitle string, palette *Palette) *Overlay {
	return &Overlay{
		Title:    title,
		Subtitle: subtitle,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		palette:  palette,
	}
}

// Lines returns the centred message for the frame's stage, headline first.
func (o *Overlay) Lines(f system.Frame) []string {
	switch f.Stage {
	case system.StageStart:
		lines := []string{o.Title}
		if o.Subtitle != "" {
			lines = append(lines, o.Subtitle)
		}
		return append(lines, "Press SPACE to start")
	case system.StageCleared:
		return []string{fmt.Sprintf("Level %d cleared!", f.LevelIndex), fmt.Sprintf("Score: %d", f.Score)}
	case system.StageWin:
		return []string{"You win!", fmt.Sprintf("Final score: %d", f.Score), "Press SPACE to play again"}
	case system.StageLose:
		return []string{"You fell!", fmt.Sprintf("Score: %d", f.Score), "Press SPACE to try again"}
	default:
		return nil
	}
}

// HUD is the status line shown while a level is on screen.
func (o *Overlay) HUD(f system.Frame) string {
	switch f.Stage {
	case system.StagePlaying, system.StageCleared:
		return fmt.Sprintf("Level %d/%d  %s  Score %d", f.LevelIndex, f.LevelCount, f.LevelName, f.Score)
	default:
		return ""
	}
}

func (o *Overlay) Draw(screen *ebiten.Image, f system.Frame) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if f.Stage == system.StageCleared {
		alpha := common.Lerp(0, clearedDimMax, f.ClearedProgress)
		dim := color.RGBA{A: uint8(alpha * 0xff)}
		o.palette.FillRect(screen, common.NewRect(0, 0, w, h), dim)
	}
	if f.Stage == system.StageWin || f.Stage == system.StageLose {
		o.palette.FillRect(screen, common.NewRect(0, 0, w, h), endDim)
	}

	if hud := o.HUD(f); hud != "" {
		o.drawText(screen, hud, overlayPadding, overlayPadding, hudScale, ebtext.AlignStart, textColor)
	}

	lines := o.Lines(f)
	clr := textColor
	if f.Stage != system.StageStart {
		clr = lightColor
	}
	lineH := float64(basicfont.Face7x13.Height * overlayScale * 3 / 2)
	y := float64(h)/2 - lineH*float64(len(lines))/2
	for _, line := range lines {
		o.drawText(screen, line, float64(w)/2, y, overlayScale, ebtext.AlignCenter, clr)
		y += lineH
	}
}

func (o *Overlay) drawText(screen *ebiten.Image, s string, x, y float64, scale float64, align ebtext.Align, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	ebtext.Draw(screen, s, o.face, op)
}
