package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xrect"
	"golang.org/x/exp/slices"
)

const brokenName = "broken"
const maxNameLen = 256

// fullscreenSnapshot is captured when a client enters the fullscreen state
// via _NET_WM_STATE_FULLSCREEN and consumed when it leaves. It is a
// distinct undo slot from floatGeom (see SPEC_FULL.md §3 expansion).
type fullscreenSnapshot struct {
	geom        savedGeom
	wasFloating bool
}

// Client is a managed top-level window. See spec.md §3.
type Client struct {
	win  xproto.Window
	name string

	X, Y, W, H, BW int

	baseW, baseH       int
	incW, incH         int
	minW, minH         int
	maxW, maxH         int
	minA, maxA         float64

	isFixed    bool
	isFloating bool
	isUrgent   bool
	neverFocus bool // WM_HINTS.input == 0: never SetInputFocus, only WM_TAKE_FOCUS

	floatGeom  savedGeom           // last known floating geometry (property 7)
	fullscreen *fullscreenSnapshot // non-nil while in fullscreen (S5)

	mon  *Monitor
	view int // 0..8, index into mon.views
}

func (c *Client) rect() Rect { return Rect{c.X, c.Y, c.W, c.H} }

func (c *Client) displayName() string {
	if c.name == "" {
		return brokenName
	}
	return c.name
}

func (c *Client) setName(name string) {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	c.name = name
}

// clientForWindow performs the linear window→client scan described in
// spec.md §4.2. N is small in practice, so this stays a straightforward
// scan across all monitors × 9 views × clients rather than a secondary
// index.
func (wm *WM) clientForWindow(w xproto.Window) *Client {
	for m := wm.mons; m != nil; m = m.next {
		for v := range m.views {
			if i := slices.IndexFunc(m.views[v].clients, func(c *Client) bool {
				return c.win == w
			}); i != -1 {
				return m.views[v].clients[i]
			}
		}
	}
	return nil
}

// monitorForWindow implements spec.md §4.2's window→monitor lookup: check
// whether w is the root, then each monitor's bar window, then fall back to
// the client lookup.
func (wm *WM) monitorForWindow(w xproto.Window) *Monitor {
	if w == wm.root {
		if m := wm.monitorForPoint(wm.pointerPos()); m != nil {
			return m
		}
	}
	for m := wm.mons; m != nil; m = m.next {
		if m.barWin == w {
			return m
		}
	}
	if c := wm.clientForWindow(w); c != nil {
		return c.mon
	}
	return wm.selMon
}

// monitorForPoint returns the first monitor whose work area contains
// (x, y), per spec.md §4.2.
func (wm *WM) monitorForPoint(x, y int) *Monitor {
	for m := wm.mons; m != nil; m = m.next {
		wa := m.workArea()
		if x >= wa.X && x < wa.right() && y >= wa.Y && y < wa.bottom() {
			return m
		}
	}
	return wm.selMon
}

// monitorContainingRect returns the monitor with the largest overlap with
// r. Re-homing after an interactive move (§4.7) and initial placement use
// monitorForPoint instead.
func (wm *WM) monitorContainingRect(r Rect) *Monitor {
	var rects []xrect.Rect
	var mons []*Monitor
	for m := wm.mons; m != nil; m = m.next {
		rects = append(rects, xrect.New(m.MX, m.MY, m.MW, m.MH))
		mons = append(mons, m)
	}
	if len(rects) == 0 {
		return wm.selMon
	}
	best := xrect.LargestOverlap(xrect.New(r.X, r.Y, r.W, r.H), rects)
	for i, rr := range rects {
		if rr == best {
			return mons[i]
		}
	}
	return wm.selMon
}
