package bsp

import "tinygo.org/x/drivers/touch"

// simTouch implements touch.Pointer over the state SetTouchState feeds.
type simTouch struct {
	sp *SimSupport
}

func (t *simTouch) ReadTouchPoint() touch.Point {
	t.sp.mu.Lock()
	defer t.sp.mu.Unlock()
	if !t.sp.touchDown {
		return touch.Point{}
	}
	return touch.Point{X: t.sp.touchX, Y: t.sp.touchY, Z: 1}
}
