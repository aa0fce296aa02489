package main

import (
	"log/slog"
)

const (
	dragRotateSensitivity    = 0.001
	dragTranslateSensitivity = 0.002
	scrollSensitivity        = 0.1

	stepScaleUp   = 2.0
	stepScaleDown = 0.5
)

type buttonMask int

const (
	buttonMaskLeft buttonMask = 1 << iota
	buttonMaskRight
	buttonMaskMiddle
)

func (m buttonMask) has(b mouseButton) bool {
	return m&(1<<b) != 0
}

type modifierMask int

const (
	modShift modifierMask = 1 << iota
	modCtrl
	modAlt
)

// inputEvent is one of dragEvent, scrollEvent, buttonEvent or keyEvent.
type inputEvent interface {
	isInputEvent()
}

// Positive DY means upward.
type dragEvent struct {
	X, Y      float64
	DX, DY    float64
	Buttons   buttonMask
	Modifiers modifierMask
}

// Positive ScrollY means scrolling up.
type scrollEvent struct {
	X, Y             float64
	ScrollX, ScrollY float64
}

type buttonEvent struct {
	X, Y      float64
	Button    mouseButton
	Modifiers modifierMask
	Pressed   bool
}

type keyEvent struct {
	Code string
}

func (dragEvent) isInputEvent()   {}
func (scrollEvent) isInputEvent() {}
func (buttonEvent) isInputEvent() {}
func (keyEvent) isInputEvent()    {}

type keyAction int

const (
	actionNone keyAction = iota
	actionToggleAxes
	actionToggleBoard
	actionToggleGrid
	actionToggleHalfFov
	actionReset
	actionZNearUp
	actionZNearDown
	actionStepUp
	actionStepDown
	actionQuit
	actionReportPose
	actionHideAxes
	actionToggleFullscreen
)

var keyActionNames = map[string]keyAction{
	"none":              actionNone,
	"toggle_axes":       actionToggleAxes,
	"toggle_board":      actionToggleBoard,
	"toggle_grid":       actionToggleGrid,
	"toggle_half_fov":   actionToggleHalfFov,
	"reset":             actionReset,
	"z_near_up":         actionZNearUp,
	"z_near_down":       actionZNearDown,
	"step_up":           actionStepUp,
	"step_down":         actionStepDown,
	"quit":              actionQuit,
	"report_pose":       actionReportPose,
	"hide_axes":         actionHideAxes,
	"toggle_fullscreen": actionToggleFullscreen,
}

// keymap maps KeyboardEvent.code to actions.
type keymap map[string]keyAction

func defaultKeymap() keymap {
	return keymap{
		"F1":         actionHideAxes,
		"F2":         actionToggleFullscreen,
		"KeyA":       actionToggleAxes,
		"KeyB":       actionToggleBoard,
		"KeyF":       actionToggleHalfFov,
		"KeyG":       actionToggleGrid,
		"KeyR":       actionReset,
		"ArrowUp":    actionZNearUp,
		"ArrowDown":  actionZNearDown,
		"ArrowRight": actionStepUp,
		"ArrowLeft":  actionStepDown,
		"Escape":     actionQuit,
		"KeyQ":       actionQuit,
		"KeyP":       actionReportPose,
	}
}

type inputController struct {
	view   *viewState
	keys   keymap
	logger *slog.Logger

	// fullscreen switches the display between fullscreen and windowed.
	// Nil disables the action.
	fullscreen func()
}

func newInputController(v *viewState, km keymap, logger *slog.Logger) *inputController {
	return &inputController{
		view:   v,
		keys:   km,
		logger: logger,
	}
}

// handle applies e to the view state and reports whether the viewer should
// stop.
func (c *inputController) handle(e inputEvent) bool {
	v := c.view
	switch e := e.(type) {
	case dragEvent:
		if e.Buttons.has(mouseLeft) {
			v.yaw -= e.DX * dragRotateSensitivity
			v.pitch += e.DY * dragRotateSensitivity
		}
		if e.Buttons.has(mouseRight) {
			v.translation[0] += float32(e.DX * dragTranslateSensitivity)
			v.translation[1] += float32(e.DY * dragTranslateSensitivity)
		}
		if e.Buttons.has(mouseMiddle) {
			v.roll -= e.DX * dragRotateSensitivity
		}
	case scrollEvent:
		v.translation[2] += float32(e.ScrollY * scrollSensitivity)
	case buttonEvent:
		v.flipButton(e.Button)
	case keyEvent:
		return c.handleKey(e)
	}
	return false
}

func (c *inputController) handleKey(e keyEvent) bool {
	v := c.view
	a, ok := c.keys[e.Code]
	if !ok {
		c.logger.Debug("unbound key", "code", e.Code)
		return false
	}
	switch a {
	case actionHideAxes:
		v.drawAxes = false
		v.drawGrid = false
	case actionToggleFullscreen:
		if c.fullscreen != nil {
			c.fullscreen()
		}
	case actionToggleAxes:
		v.toggle(flagAxes)
		v.toggle(flagGrid)
	case actionToggleBoard:
		v.toggle(flagBoard)
	case actionToggleGrid:
		v.toggle(flagGrid)
	case actionToggleHalfFov:
		v.toggle(flagHalfFov)
	case actionReset:
		v.reset()
	case actionZNearUp:
		v.adjustZNear(v.deltaZNear)
	case actionZNearDown:
		v.adjustZNear(-v.deltaZNear)
	case actionStepUp:
		v.scaleStep(stepScaleUp)
	case actionStepDown:
		v.scaleStep(stepScaleDown)
	case actionQuit:
		return true
	case actionReportPose:
		p := v.pose()
		c.logger.Info("pose",
			"rvec", p.RotationVector,
			"tvec", p.Translation,
			"z_near", p.ZNear,
			"half_fov", p.HalfFov,
		)
	}
	if a != actionReportPose && a != actionNone {
		c.logger.Debug("key", "code", e.Code,
			"z_near", v.zNear, "delta_z_near", v.deltaZNear,
			"axes", v.drawAxes, "grid", v.drawGrid, "board", v.drawBoard, "half_fov", v.halfFov,
		)
	}
	return false
}
