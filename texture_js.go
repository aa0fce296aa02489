package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/seqsense/boardviewer/pattern"
)

var errImageLoad = errors.New("failed to load board texture")

// checkerboardTexture renders the calibration pattern into an ImageData
// usable as a texture source.
func checkerboardTexture(cb pattern.Checkerboard) (js.Value, error) {
	img, err := cb.Image()
	if err != nil {
		return js.Undefined(), err
	}
	size := img.Bounds().Size()
	array := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(array, img.Pix)
	return js.Global().Get("ImageData").New(array, size.X, size.Y), nil
}

// loadImage loads an image file through an Image element.
func loadImage(ctx context.Context, path string) (js.Value, error) {
	img := js.Global().Get("Image").New()
	chOK := make(chan bool, 1)
	onLoad := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chOK <- true
		return nil
	})
	onError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chOK <- false
		return nil
	})
	defer func() {
		img.Call("removeEventListener", "load", onLoad)
		img.Call("removeEventListener", "error", onError)
		onLoad.Release()
		onError.Release()
	}()
	img.Call("addEventListener", "load", onLoad)
	img.Call("addEventListener", "error", onError)
	img.Set("src", path)

	select {
	case ok := <-chOK:
		if !ok {
			return js.Undefined(), errImageLoad
		}
		return img, nil
	case <-ctx.Done():
		return js.Undefined(), ctx.Err()
	}
}

// boardTexture returns the configured texture image, or the synthesized
// checkerboard when none is configured or loading fails.
func boardTexture(ctx context.Context, b boardParams, logger *slog.Logger) (js.Value, error) {
	if b.Texture != "" {
		img, err := loadImage(ctx, b.Texture)
		if err == nil {
			return img, nil
		}
		logger.Warn("using checkerboard texture", "path", b.Texture, "error", err)
	}
	cb := boardCheckerboard(b)
	cx, cy := cb.InnerCorners()
	logger.Info("checkerboard texture",
		"squares", fmt.Sprintf("%dx%d", cb.Cols, cb.Rows),
		"inner_corners", fmt.Sprintf("%dx%d", cx, cy),
		"square_px", cb.Square,
	)
	return checkerboardTexture(cb)
}
