package main

import (
	"syscall/js"
)

type touchKind int

const (
	touchDown touchKind = iota
	touchMove
	touchUp
)

type touchInput struct {
	kind  touchKind
	point touchPoint
}

// onTouch forwards touch pointer events on canvas to ch. Mouse and pen
// pointers are left to the mouse handlers.
func onTouch(canvas js.Value, ch chan<- touchInput) []js.Func {
	var fns []js.Func
	for name, kind := range map[string]touchKind{
		"pointerdown":   touchDown,
		"pointermove":   touchMove,
		"pointerup":     touchUp,
		"pointercancel": touchUp,
	} {
		kind := kind
		fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			e := args[0]
			if e.Get("pointerType").String() != "touch" {
				return nil
			}
			e.Call("preventDefault")
			e.Call("stopPropagation")
			ch <- touchInput{
				kind: kind,
				point: touchPoint{
					ID:      e.Get("pointerId").Int(),
					X:       e.Get("offsetX").Int(),
					Y:       e.Get("offsetY").Int(),
					Primary: e.Get("isPrimary").Bool(),
				},
			}
			return nil
		})
		canvas.Call("addEventListener", name, fn)
		fns = append(fns, fn)
	}
	return fns
}
