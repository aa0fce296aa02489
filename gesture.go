package main

import (
	"math"
)

const pinchSensitivity = 0.01

type touchPoint struct {
	ID      int
	X, Y    int
	Primary bool
}

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureRotate
	gesturePinch
	gestureMove
)

// touchGesture maps touch pointers onto the mouse semantics of
// inputController: one finger rotates like the left button, two fingers
// pinch like the wheel and three fingers translate like the right button.
// The mode is fixed by the number of fingers down at the first move.
type touchGesture struct {
	points  map[int]touchPoint
	primary touchPoint
	drag    dragTracker

	mode      gestureMode
	distance0 float64
}

func newTouchGesture() *touchGesture {
	return &touchGesture{points: make(map[int]touchPoint)}
}

func (g *touchGesture) spread() float64 {
	var pp []touchPoint
	for _, p := range g.points {
		pp = append(pp, p)
	}
	if len(pp) < 2 {
		return 0
	}
	return math.Hypot(float64(pp[0].X-pp[1].X), float64(pp[0].Y-pp[1].Y))
}

func (g *touchGesture) down(p touchPoint) {
	g.points[p.ID] = p
	switch len(g.points) {
	case 1:
		g.primary = p
	case 2:
		g.distance0 = g.spread()
	}
}

func (g *touchGesture) move(p touchPoint) []inputEvent {
	if _, ok := g.points[p.ID]; !ok {
		return nil
	}
	g.points[p.ID] = p

	var out []inputEvent
	if g.mode == gestureNone {
		switch len(g.points) {
		case 1:
			g.mode = gestureRotate
			if e, ok := g.drag.down(g.primary.X, g.primary.Y, domButtonLeft, 0); ok {
				out = append(out, e)
			}
		case 2:
			g.mode = gesturePinch
		default:
			g.mode = gestureMove
			if e, ok := g.drag.down(g.primary.X, g.primary.Y, domButtonRight, 0); ok {
				out = append(out, e)
			}
		}
	}
	switch g.mode {
	case gestureRotate, gestureMove:
		if p.Primary {
			if e, ok := g.drag.move(p.X, p.Y, 0); ok {
				out = append(out, e)
			}
		}
	case gesturePinch:
		if len(g.points) == 2 {
			d := g.spread()
			out = append(out, scrollEvent{
				X: float64(p.X), Y: float64(p.Y),
				ScrollY: (d - g.distance0) * pinchSensitivity,
			})
			g.distance0 = d
		}
	}
	if p.Primary {
		g.primary = p
	}
	return out
}

// up also serves pointercancel.
func (g *touchGesture) up(p touchPoint) []inputEvent {
	if _, ok := g.points[p.ID]; !ok {
		return nil
	}
	delete(g.points, p.ID)
	if len(g.points) > 0 {
		return nil
	}
	if p.Primary {
		g.primary = p
	}

	var out []inputEvent
	button := -1
	switch g.mode {
	case gestureRotate:
		button = domButtonLeft
	case gestureMove:
		button = domButtonRight
	}
	if e, ok := g.drag.up(g.primary.X, g.primary.Y, button, 0); ok {
		out = append(out, e)
	}
	g.mode = gestureNone
	return out
}
