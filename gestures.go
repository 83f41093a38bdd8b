package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
)

const (
	mouseMask = xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion
	cursorMove   = 52 // XC_fleur
	cursorResize = 120 // XC_sizing
)

// grabGesturePointer grabs the pointer with the given cursor and the mask
// spec.md §4.7 requires for the inner loop: pointer events plus Expose and
// SubstructureRedirect so MapRequest/ConfigureRequest keep flowing to
// their normal handlers.
func (wm *WM) grabGesturePointer(cursorShape uint16) bool {
	cur := xcursor.CreateCursor(wm.xu, cursorShape)
	reply, err := xproto.GrabPointer(wm.conn, false, wm.root,
		mouseMask|xproto.EventMaskExposure|xproto.EventMaskSubstructureRedirect,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, xproto.Cursor(cur),
		xproto.TimeCurrentTime).Reply()
	return err == nil && reply != nil && reply.Status == xproto.GrabStatusSuccess
}

func (wm *WM) ungrabPointer() {
	xproto.UngrabPointer(wm.conn, xproto.TimeCurrentTime)
}

// nextGestureEvent implements the inner event loop of §4.7: only
// ConfigureRequest, Expose, MapRequest (dispatched normally so the UI
// stays live) and MotionNotify are acted on; ButtonRelease ends the loop.
func (wm *WM) nextGestureEvent() (xgb.Event, bool) {
	for {
		ev, err := wm.conn.WaitForEvent()
		if err != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ConfigureRequestEvent:
			wm.onConfigureRequest(e)
		case xproto.ExposeEvent:
			wm.onExpose(e)
		case xproto.MapRequestEvent:
			wm.onMapRequest(e)
		case xproto.MotionNotifyEvent:
			return e, true
		case xproto.ButtonReleaseEvent:
			return nil, false
		}
	}
}

// moveMouse runs the interactive move gesture (spec.md §4.7). If the
// client is tiled and the current layout actually arranges it, the drag
// past snap auto-floats the client; if the layout is already floating (or
// the client already is), movement applies directly.
func (wm *WM) moveMouse() {
	c := wm.selMon.selectedView().sel()
	if c == nil || c.fullscreen != nil {
		return
	}
	if !wm.grabGesturePointer(cursorMove) {
		return
	}
	defer wm.ungrabPointer()

	startX, startY := wm.pointerPos()
	origX, origY := c.X, c.Y
	_, arranged := c.mon.currentLayout().Layout.(floatingLayout)
	arranged = !arranged

	for {
		ev, ok := wm.nextGestureEvent()
		if !ok {
			break
		}
		me := ev.(xproto.MotionNotifyEvent)
		dx := int(me.RootX) - startX
		dy := int(me.RootY) - startY

		if arranged && c.isFloating == false {
			if absFloat(float64(dx))+absFloat(float64(dy)) > float64(wm.cfg.Snap) {
				c.isFloating = true
				wm.arrange(c.mon)
			} else {
				continue
			}
		}

		nx, ny := origX+dx, origY+dy
		nx, ny = wm.snapToEdges(c, nx, ny)
		if c.resize(nx, ny, c.W, c.H, true, wm.cfg.ResizeHints) {
			wm.configureClient(c)
		}
	}

	wm.transferIfMonitorChanged(c)
}

// resizeMouse runs the interactive resize gesture: warp to the
// bottom-right corner first, then interpret absolute pointer position as
// the new size (floored at 1×1), and warp back on release.
func (wm *WM) resizeMouse() {
	c := wm.selMon.selectedView().sel()
	if c == nil || c.fullscreen != nil {
		return
	}
	if !wm.grabGesturePointer(cursorResize) {
		return
	}
	defer wm.ungrabPointer()

	xproto.WarpPointer(wm.conn, 0, c.win, 0, 0, 0, 0,
		int16(c.W+c.BW-1), int16(c.H+c.BW-1))

	_, arranged := c.mon.currentLayout().Layout.(floatingLayout)
	arranged = !arranged

	for {
		ev, ok := wm.nextGestureEvent()
		if !ok {
			break
		}
		me := ev.(xproto.MotionNotifyEvent)
		nw := int(me.RootX) - c.X - 2*c.BW + 1
		nh := int(me.RootY) - c.Y - 2*c.BW + 1
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}

		if arranged && !c.isFloating {
			if absFloat(float64(nw-c.W))+absFloat(float64(nh-c.H)) > float64(wm.cfg.Snap) {
				c.isFloating = true
				wm.arrange(c.mon)
			} else {
				continue
			}
		}

		if c.resize(c.X, c.Y, nw, nh, true, wm.cfg.ResizeHints) {
			wm.configureClient(c)
		}
	}

	xproto.WarpPointer(wm.conn, 0, c.win, 0, 0, 0, 0,
		int16(c.W+c.BW-1), int16(c.H+c.BW-1))

	wm.transferIfMonitorChanged(c)
}

// snapToEdges implements the "within snap pixels of a monitor edge"
// clause of §4.7.
func (wm *WM) snapToEdges(c *Client, x, y int) (int, int) {
	wa := c.mon.workArea()
	s := wm.cfg.Snap
	if absFloat(float64(x-wa.X)) < float64(s) {
		x = wa.X
	} else if absFloat(float64((x+c.W)-wa.right())) < float64(s) {
		x = wa.right() - c.W
	}
	if absFloat(float64(y-wa.Y)) < float64(s) {
		y = wa.Y
	} else if absFloat(float64((y+c.H)-wa.bottom())) < float64(s) {
		y = wa.bottom() - c.H
	}
	return x, y
}

// transferIfMonitorChanged re-homes c to whichever monitor its center now
// lies on, if that differs from its current monitor (spec.md §4.7).
func (wm *WM) transferIfMonitorChanged(c *Client) {
	centerX, centerY := c.X+c.W/2, c.Y+c.H/2
	target := wm.monitorForPoint(centerX, centerY)
	if target == nil || target == c.mon {
		wm.arrange(c.mon)
		return
	}
	oldMon := c.mon
	oldView := oldMon.views[c.view]
	moveClientToView(c, oldView, target.views[c.view], c.view)
	c.mon = target
	wm.focus(c)
	wm.arrange(oldMon)
	wm.arrange(target)
}
