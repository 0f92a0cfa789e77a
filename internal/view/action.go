package view

// Action is a discrete viewer command, usually produced by a key press.
type Action int

const (
	None Action = iota
	Quit
	ZoomIn
	ZoomOut
	PanLeft
	PanRight
	PanUp
	PanDown
	PrecisionUp
	PrecisionDown
	NextColor
	NextFractal
	ToggleAutomation
	ToggleCompute
	PowerUp
	PowerDown
	Reset
)

var actionNames = [...]string{
	None:             "none",
	Quit:             "quit",
	ZoomIn:           "zoom in",
	ZoomOut:          "zoom out",
	PanLeft:          "pan left",
	PanRight:         "pan right",
	PanUp:            "pan up",
	PanDown:          "pan down",
	PrecisionUp:      "increase precision",
	PrecisionDown:    "decrease precision",
	NextColor:        "cycle colour",
	NextFractal:      "cycle fractal",
	ToggleAutomation: "toggle animation",
	ToggleCompute:    "toggle GPU/CPU target",
	PowerUp:          "increase power n",
	PowerDown:        "decrease power n",
	Reset:            "reset view",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}
