package main

// WheelEvent.deltaMode values.
const (
	deltaModePixel = 0x00
	deltaModeLine  = 0x01
	deltaModePage  = 0x02
)

const (
	pixelsPerClick = 100.0
	linesPerClick  = 3.0
	maxClicks      = 10.0
)

// normalizeWheel converts a DOM wheel delta into scroll clicks, positive
// when scrolling up.
func normalizeWheel(delta float64, deltaMode int) float64 {
	var clicks float64
	switch deltaMode {
	case deltaModeLine:
		clicks = delta / linesPerClick
	case deltaModePage:
		clicks = delta
	default:
		clicks = delta / pixelsPerClick
	}
	if clicks > maxClicks {
		clicks = maxClicks
	} else if clicks < -maxClicks {
		clicks = -maxClicks
	}
	return -clicks
}
