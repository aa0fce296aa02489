package main

import (
	"errors"
	"syscall/js"
)

var errContextLostEvent = errors.New("received context lost event")

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

// settler resolves or rejects a JS Promise from Go.
type settler struct {
	resolve, reject js.Value
}

func (s settler) settle(v interface{}, err error) {
	if err != nil {
		s.reject.Invoke(errorToJS(err))
		return
	}
	s.resolve.Invoke(v)
}

// newPromise returns a JS Promise and calls fn with its settler.
// fn must not block.
func newPromise(fn func(s settler)) js.Value {
	var executor js.Func
	executor = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		executor.Release()
		fn(settler{resolve: args[0], reject: args[1]})
		return nil
	})
	return js.Global().Get("Promise").New(executor)
}
