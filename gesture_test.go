package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTouchGesture(t *testing.T) {
	t.Run("Rotate", func(t *testing.T) {
		g := newTouchGesture()
		g.down(touchPoint{ID: 1, X: 10, Y: 10, Primary: true})

		evs := g.move(touchPoint{ID: 1, X: 15, Y: 8, Primary: true})
		assert.Equal(t, []inputEvent{
			buttonEvent{X: 10, Y: 10, Button: mouseLeft, Pressed: true},
			dragEvent{X: 15, Y: 8, DX: 5, DY: 2, Buttons: buttonMaskLeft},
		}, evs)
		assert.Equal(t, cursorGrabbing, dragCursor(g.drag.held))

		evs = g.up(touchPoint{ID: 1, X: 15, Y: 8, Primary: true})
		assert.Equal(t, []inputEvent{
			buttonEvent{X: 15, Y: 8, Button: mouseLeft},
		}, evs)
		assert.Equal(t, gestureNone, g.mode)
		assert.Equal(t, buttonMask(0), g.drag.held)
	})

	t.Run("Pinch", func(t *testing.T) {
		g := newTouchGesture()
		g.down(touchPoint{ID: 1, X: 0, Y: 0, Primary: true})
		g.down(touchPoint{ID: 2, X: 100, Y: 0})

		evs := g.move(touchPoint{ID: 2, X: 150, Y: 0})
		require.Len(t, evs, 1)
		se, ok := evs[0].(scrollEvent)
		require.True(t, ok)
		assert.InDelta(t, 0.5, se.ScrollY, 1e-9, "spreading fingers zooms in")

		evs = g.move(touchPoint{ID: 2, X: 100, Y: 0})
		require.Len(t, evs, 1)
		assert.InDelta(t, -0.5, evs[0].(scrollEvent).ScrollY, 1e-9)

		assert.Nil(t, g.up(touchPoint{ID: 2, X: 100, Y: 0}))
		assert.Empty(t, g.up(touchPoint{ID: 1, X: 0, Y: 0, Primary: true}))
		assert.Equal(t, gestureNone, g.mode)
	})

	t.Run("Move", func(t *testing.T) {
		g := newTouchGesture()
		g.down(touchPoint{ID: 1, X: 10, Y: 10, Primary: true})
		g.down(touchPoint{ID: 2, X: 20, Y: 10})
		g.down(touchPoint{ID: 3, X: 30, Y: 10})

		evs := g.move(touchPoint{ID: 1, X: 12, Y: 10, Primary: true})
		assert.Equal(t, []inputEvent{
			buttonEvent{X: 10, Y: 10, Button: mouseRight, Pressed: true},
			dragEvent{X: 12, Y: 10, DX: 2, Buttons: buttonMaskRight},
		}, evs)
		assert.Equal(t, cursorMove, dragCursor(g.drag.held))

		assert.Empty(t, g.move(touchPoint{ID: 2, X: 25, Y: 10}), "only the primary pointer drags")

		assert.Nil(t, g.up(touchPoint{ID: 2}))
		assert.Nil(t, g.up(touchPoint{ID: 3}))
		evs = g.up(touchPoint{ID: 1, X: 12, Y: 10, Primary: true})
		assert.Equal(t, []inputEvent{
			buttonEvent{X: 12, Y: 10, Button: mouseRight},
		}, evs)
	})

	t.Run("UnknownPointer", func(t *testing.T) {
		g := newTouchGesture()
		assert.Nil(t, g.move(touchPoint{ID: 5}))
		assert.Nil(t, g.up(touchPoint{ID: 5}))
	})

	t.Run("Tap", func(t *testing.T) {
		g := newTouchGesture()
		g.down(touchPoint{ID: 1, X: 3, Y: 3, Primary: true})
		assert.Empty(t, g.up(touchPoint{ID: 1, X: 3, Y: 3, Primary: true}))
	})
}

func TestDragCursor(t *testing.T) {
	testCases := map[string]struct {
		held     buttonMask
		expected cursor
	}{
		"None":      {0, cursorDefault},
		"Left":      {buttonMaskLeft, cursorGrabbing},
		"Middle":    {buttonMaskMiddle, cursorGrabbing},
		"Right":     {buttonMaskRight, cursorMove},
		"LeftRight": {buttonMaskLeft | buttonMaskRight, cursorMove},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dragCursor(tt.held))
		})
	}
}
