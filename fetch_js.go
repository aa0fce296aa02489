package main

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

var errFetchFailed = errors.New("failed to fetch file")

// fetchGet downloads path relative to the page. It blocks until the body
// arrives or ctx is done.
func fetchGet(ctx context.Context, path string) ([]byte, error) {
	type result struct {
		b   []byte
		err error
	}
	ch := make(chan result, 1)

	var errStatus error
	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if !args[0].Get("ok").Bool() {
			errStatus = fmt.Errorf("%w: %s: %s", errFetchFailed, path, args[0].Get("statusText").String())
			return nil
		}
		return args[0].Call("arrayBuffer")
	})
	onBody := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if errStatus != nil {
			ch <- result{err: errStatus}
			return nil
		}
		array := js.Global().Get("Uint8Array").New(args[0])
		b := make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		ch <- result{b: b}
		return nil
	})
	onError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- result{err: fmt.Errorf("%w: %s", errFetchFailed, path)}
		return nil
	})

	js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "include",
	}).Call("then", onResponse).Call("then", onBody).Call("catch", onError)

	select {
	case r := <-ch:
		// Functions still referenced by a pending promise must stay alive,
		// so they are released only once it has settled.
		onResponse.Release()
		onBody.Release()
		onError.Release()
		return r.b, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
