// Package blob wraps the browser Blob API.
package blob

import (
	"syscall/js"
)

type Blob js.Value

var blobJS = js.Global().Get("Blob")

func New(b []byte, typ string) Blob {
	array := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(array, b)

	return Blob(blobJS.New([]interface{}{array}, map[string]interface{}{
		"type": typ,
	}))
}

func (blob Blob) JS() js.Value {
	return js.Value(blob)
}

// Download asks the browser to save the blob as name.
func (blob Blob) Download(name string) {
	url := js.Global().Get("URL")
	href := url.Call("createObjectURL", js.Value(blob))
	defer url.Call("revokeObjectURL", href)

	doc := js.Global().Get("document")
	a := doc.Call("createElement", "a")
	a.Set("href", href)
	a.Set("download", name)
	doc.Get("body").Call("appendChild", a)
	a.Call("click")
	a.Call("remove")
}
