package component

// WhiteFlash makes a body draw white while On. It toggles every Interval
// ticks until Frames run out.
type WhiteFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
