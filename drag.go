package main

// DOM MouseEvent.button numbering.
const (
	domButtonLeft   = 0
	domButtonMiddle = 1
	domButtonRight  = 2
)

func domButton(b int) (mouseButton, bool) {
	switch b {
	case domButtonLeft:
		return mouseLeft, true
	case domButtonMiddle:
		return mouseMiddle, true
	case domButtonRight:
		return mouseRight, true
	}
	return 0, false
}

// dragTracker turns DOM mousedown/mousemove/mouseup into input events.
// DOM offsets grow downwards; emitted deltas grow upwards.
type dragTracker struct {
	held   buttonMask
	x0, y0 int
}

func (d *dragTracker) down(x, y, button int, mod modifierMask) (inputEvent, bool) {
	b, ok := domButton(button)
	if !ok {
		return nil, false
	}
	d.held |= 1 << b
	d.x0, d.y0 = x, y
	return buttonEvent{
		X: float64(x), Y: float64(y),
		Button:    b,
		Modifiers: mod,
		Pressed:   true,
	}, true
}

func (d *dragTracker) up(x, y, button int, mod modifierMask) (inputEvent, bool) {
	b, ok := domButton(button)
	if !ok {
		return nil, false
	}
	d.held &^= 1 << b
	return buttonEvent{
		X: float64(x), Y: float64(y),
		Button:    b,
		Modifiers: mod,
	}, true
}

func (d *dragTracker) move(x, y int, mod modifierMask) (inputEvent, bool) {
	dx, dy := x-d.x0, d.y0-y
	d.x0, d.y0 = x, y
	if d.held == 0 || (dx == 0 && dy == 0) {
		return nil, false
	}
	return dragEvent{
		X: float64(x), Y: float64(y),
		DX: float64(dx), DY: float64(dy),
		Buttons:   d.held,
		Modifiers: mod,
	}, true
}

// cancel forgets held buttons, e.g. when the pointer leaves the canvas.
func (d *dragTracker) cancel() {
	d.held = 0
}

func modifiers(shift, ctrl, alt bool) modifierMask {
	var m modifierMask
	if shift {
		m |= modShift
	}
	if ctrl {
		m |= modCtrl
	}
	if alt {
		m |= modAlt
	}
	return m
}
