package main

type cursor string

const (
	cursorDefault  cursor = "default"
	cursorMove     cursor = "move"
	cursorGrabbing cursor = "grabbing"
)

// dragCursor tells which drag is in progress. Translation wins over
// rotation when both are held.
func dragCursor(held buttonMask) cursor {
	switch {
	case held.has(mouseRight):
		return cursorMove
	case held != 0:
		return cursorGrabbing
	default:
		return cursorDefault
	}
}
