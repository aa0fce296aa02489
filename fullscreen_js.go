package main

import (
	"syscall/js"
)

func toggleFullscreen(canvas js.Value) {
	doc := js.Global().Get("document")
	if doc.Get("fullscreenElement").IsNull() {
		canvas.Call("requestFullscreen")
		return
	}
	doc.Call("exitFullscreen")
}
