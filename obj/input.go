package obj

// Input is the per-frame input snapshot. It is produced by the platform
// poller and consumed by the session; nothing in here talks to a device.
type Input struct {
	// Quit is set when the window was closed or the quit key pressed.
	Quit bool
	// Confirm is true only on the frame the confirm key went down.
	Confirm bool
	Left    bool
	Right   bool
}

// MoveX folds the held direction keys into -1, 0 or +1. Holding both keys
// cancels out.
func (i Input) MoveX() int {
	x := 0
	if i.Left {
		x--
	}
	if i.Right {
		x++
	}
	return x
}
