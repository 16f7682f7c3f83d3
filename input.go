package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/parkour/obj"
)

const stickDeadzone = 0.3

// pollInput snapshots keyboard and the first gamepad into an obj.Input.
func pollInput() obj.Input {
	in := obj.Input{
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ) || ebiten.IsWindowBeingClosed(),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch {
		case leftX < -stickDeadzone:
			in.Left = true
		case leftX > stickDeadzone:
			in.Right = true
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Confirm = in.Confirm || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return in
}

// pausePressed reports whether the pause toggle went down this frame.
func pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	for _, id := range ebiten.GamepadIDs() {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
