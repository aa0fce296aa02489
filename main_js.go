package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"syscall/js"
	"time"

	"github.com/seqsense/boardviewer/blob"
	webgl "github.com/seqsense/webgl-go"
)

const (
	defaultConfigPath = "config.yaml"
	frameInterval     = time.Second / 30
	loadTimeout       = 10 * time.Second
)

type commandRequest struct {
	line string
	s    settler
}

func main() {
	level := &slog.LevelVar{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	conf := loadConfig(ctx, configPath(), logger)
	level.Set(conf.logLevel())

	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "boardCanvas")
	gl, err := webgl.New(canvas)
	if err != nil {
		cancel()
		logger.Error("failed to initialize WebGL", "error", err)
		return
	}
	showDebugInfo(gl, logger)

	board := newBoardGeometry(conf.Board)
	d, err := newWebGLDrawer(gl, board, conf.Grid)
	if err != nil {
		cancel()
		logger.Error("failed to initialize renderer", "error", err)
		return
	}
	tex, err := boardTexture(ctx, conf.Board, logger)
	cancel()
	if err != nil {
		logger.Error("failed to create board texture", "error", err)
		return
	}
	d.setTexture(tex)

	vs := newViewState(conf.Projection)
	ic := newInputController(vs, conf.keymap(), logger)
	ic.fullscreen = func() { toggleFullscreen(canvas) }
	con := &console{view: vs, params: conf.Projection}
	drag := &dragTracker{}
	touch := newTouchGesture()
	cur := cursorDefault

	chWheel := make(chan webgl.WheelEvent)
	gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	chMouseDown := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseDown(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseDown <- e
	})
	chMouseMove := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseMove(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseMove <- e
	})
	chMouseUp := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseUp(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseUp <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})
	chKey := make(chan webgl.KeyboardEvent)
	gl.Canvas.OnKeyDown(func(e webgl.KeyboardEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chKey <- e
	})
	chContextLost := make(chan struct{})
	onContextLost := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chContextLost <- struct{}{}
		return nil
	})
	defer onContextLost.Release()
	canvas.Call("addEventListener", "webglcontextlost", onContextLost)
	chLeave := make(chan struct{})
	onLeave := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chLeave <- struct{}{}
		return nil
	})
	defer onLeave.Release()
	canvas.Call("addEventListener", "mouseleave", onLeave)
	chTouch := make(chan touchInput)
	for _, fn := range onTouch(canvas, chTouch) {
		defer fn.Release()
	}

	chCommand := make(chan commandRequest)
	runCommand := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) != 1 {
			return newPromise(func(s settler) { s.settle(nil, errArgumentNumber) })
		}
		line := args[0].String()
		return newPromise(func(s settler) {
			go func() { chCommand <- commandRequest{line: line, s: s} }()
		})
	})
	defer runCommand.Release()
	js.Global().Set("runCommand", runCommand)

	chSave := make(chan settler)
	savePCD := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return newPromise(func(s settler) {
			go func() { chSave <- s }()
		})
	})
	defer savePCD.Release()
	js.Global().Set("savePCD", savePCD)

	defer func() {
		js.Global().Delete("runCommand")
		js.Global().Delete("savePCD")
	}()

	gl.Canvas.Focus()
	logger.Info("viewer started", "z_near", vs.zNear, "fov_y", conf.Projection.FovY)

	tick := time.NewTicker(frameInterval)
	defer tick.Stop()

	var width, height int
	for {
		var evs []inputEvent
		push := func(e inputEvent, ok bool) {
			if ok {
				evs = append(evs, e)
			}
		}
		select {
		case <-tick.C:
			newWidth := gl.Canvas.ClientWidth()
			newHeight := gl.Canvas.ClientHeight()
			if newWidth != width || newHeight != height {
				width, height = newWidth, newHeight
				gl.Canvas.SetWidth(width)
				gl.Canvas.SetHeight(height)
			}
			d.begin(width, height)
			composeFrame(vs, conf.Projection, width, height, d)
			continue
		case e := <-chWheel:
			push(scrollEvent{
				X: float64(e.OffsetX), Y: float64(e.OffsetY),
				ScrollY: normalizeWheel(e.DeltaY, int(e.DeltaMode)),
			}, true)
		case e := <-chMouseDown:
			push(drag.down(e.OffsetX, e.OffsetY, int(e.Button), modifiers(e.ShiftKey, e.CtrlKey, e.AltKey)))
			gl.Canvas.Focus()
		case e := <-chMouseUp:
			push(drag.up(e.OffsetX, e.OffsetY, int(e.Button), modifiers(e.ShiftKey, e.CtrlKey, e.AltKey)))
		case e := <-chMouseMove:
			push(drag.move(e.OffsetX, e.OffsetY, modifiers(e.ShiftKey, e.CtrlKey, e.AltKey)))
		case <-chLeave:
			drag.cancel()
		case t := <-chTouch:
			switch t.kind {
			case touchDown:
				touch.down(t.point)
			case touchMove:
				evs = touch.move(t.point)
			case touchUp:
				evs = touch.up(t.point)
			}
		case e := <-chKey:
			push(keyEvent{Code: e.Code}, true)
		case req := <-chCommand:
			out, err := con.Run(req.line)
			req.s.settle(out, err)
		case s := <-chSave:
			b, err := marshalBoardCloud(board, modelViewMatrix(vs))
			if err != nil {
				s.settle(nil, err)
				break
			}
			bl := blob.New(b, "application/x-pcd")
			bl.Download("board.pcd")
			s.settle(bl.JS(), nil)
		case <-chContextLost:
			logger.Error("rendering stopped", "error", errContextLostEvent)
			return
		}
		for _, e := range evs {
			if ic.handle(e) {
				logger.Info("quit requested")
				return
			}
		}
		if c := dragCursor(drag.held | touch.drag.held); c != cur {
			cur = c
			setCursor(canvas, cur)
		}
	}
}

func configPath() string {
	search := js.Global().Get("location").Get("search")
	p := js.Global().Get("URLSearchParams").New(search).Call("get", "config")
	if p.IsNull() || p.String() == "" {
		return defaultConfigPath
	}
	return p.String()
}

// loadConfig falls back to defaults when the file is missing; an invalid file
// is reported and also replaced by defaults.
func loadConfig(ctx context.Context, path string, logger *slog.Logger) *config {
	b, err := fetchGet(ctx, path)
	if err != nil {
		if errors.Is(err, errFetchFailed) {
			logger.Info("config not found, using defaults", "path", path)
		} else {
			logger.Warn("config not loaded, using defaults", "path", path, "error", err)
		}
		return defaultConfig()
	}
	c, err := parseConfig(b)
	if err != nil {
		logger.Error("invalid config, using defaults", "path", path, "error", err)
		return defaultConfig()
	}
	return c
}
