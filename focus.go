package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// focus implements spec.md §4.5. c may be nil, in which case the head of
// the selected view's stack is used. Maintains the two cross-cutting
// invariants: the stack head always equals sel, and at most one monitor is
// selMon with its selected view's sel matching the X input focus.
func (wm *WM) focus(c *Client) {
	v := wm.selMon.selectedView()
	if c == nil || c.view != wm.selMon.selView || c.mon != wm.selMon {
		c = v.sel()
	}

	if prev := v.sel(); prev != nil && prev != c {
		wm.unfocusClient(prev, false)
	}

	if c != nil {
		if c.mon != wm.selMon {
			wm.selMon = c.mon
		}
		if c.isUrgent {
			wm.clearUrgent(c)
		}
		view := c.mon.views[c.view]
		detachstack(view, c)
		attachstack(view, c)
		wm.grabButtons(c, true)
		wm.setBorder(c, wm.cfg.ColSelBorder)
		wm.setInputFocus(c)
	} else {
		xproto.SetInputFocus(wm.conn, xproto.InputFocusPointerRoot, wm.root, xproto.TimeCurrentTime)
	}
	wm.focused = c
	wm.redrawAllBars()
}

// unfocusClient removes c's focused-state button grabs and reverts its
// border; setFocus additionally resets X input focus to the root when the
// WM itself (not a replacement client) is losing all focus.
func (wm *WM) unfocusClient(c *Client, setFocus bool) {
	if c == nil {
		return
	}
	wm.grabButtons(c, false)
	wm.setBorder(c, wm.cfg.ColNormBorder)
	if setFocus {
		xproto.SetInputFocus(wm.conn, xproto.InputFocusPointerRoot, wm.root, xproto.TimeCurrentTime)
	}
}

// setInputFocus honors neverFocus (WM_HINTS.input == 0, SPEC_FULL.md §3
// expansion): such clients are never given SetInputFocus directly, only
// (optionally) WM_TAKE_FOCUS.
func (wm *WM) setInputFocus(c *Client) {
	if !c.neverFocus {
		xproto.SetInputFocus(wm.conn, xproto.InputFocusPointerRoot, c.win, xproto.TimeCurrentTime)
	}
	wm.sendProtocolEvent(c, wm.atoms.WMTakeFocus)
}

func (wm *WM) clearUrgent(c *Client) {
	c.isUrgent = false
	// clearUrgencyHint (manage.go) clears WM_HINTS' urgency bit on the
	// server by re-writing the hints with the flag cleared.
	wm.clearUrgencyHint(c)
}

// restack implements spec.md §4.5: redraw m's bar, raise the selected
// client if it's floating-laid-out or itself floating, then for tiled
// layouts configure every non-floating stack member Below the one above
// it (bar at the top). Finally drain pending EnterNotify so the cursor
// landing on a newly revealed window doesn't refocus unintentionally.
func (wm *WM) restack(m *Monitor) {
	wm.drawBar(m)
	if wm.conn == nil { // unit tests exercise layout/focus math without a live X connection
		return
	}
	v := m.selectedView()
	sel := v.sel()
	if sel == nil {
		return
	}
	if _, floatLayout := m.currentLayout().Layout.(floatingLayout); floatLayout || sel.isFloating {
		raiseClient(wm.conn, sel.win)
	}
	if _, floatLayout := m.currentLayout().Layout.(floatingLayout); !floatLayout {
		var above xproto.Window = m.barWin
		for _, c := range v.stack {
			if c.isFloating {
				continue
			}
			configureBelow(wm.conn, c.win, above)
			above = c.win
		}
	}
	wm.drainEnterNotify()
}

func raiseClient(conn *xgb.Conn, win xproto.Window) {
	xproto.ConfigureWindow(conn, win, xproto.ConfigWindowStackMode,
		[]uint32{uint32(xproto.StackModeAbove)})
}

func configureBelow(conn *xgb.Conn, win, sibling xproto.Window) {
	xproto.ConfigureWindow(conn, win,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), uint32(xproto.StackModeBelow)})
}

// drainEnterNotify discards any already-queued EnterNotify events so a
// restack-induced cursor crossing doesn't trigger a spurious refocus
// (spec.md §4.5).
func (wm *WM) drainEnterNotify() {
	for {
		ev, err := wm.conn.PollForEvent()
		if err != nil || ev == nil {
			return
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); !ok {
			wm.pending = append(wm.pending, ev)
		}
	}
}

func (wm *WM) setBorder(c *Client, color uint32) {
	xproto.ChangeWindowAttributes(wm.conn, c.win, xproto.CwBorderPixel, []uint32{color})
}
