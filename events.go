package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
)

// handlerFunc is the shape of every entry in the dispatch table.
type handlerFunc func(wm *WM, ev xgb.Event)

// dispatchTable is the fixed, O(1) mapping from X event-code byte to
// handler demanded by spec.md §4.6 and Design Notes §9 — the Go analogue
// of dwm.c's `void (*handler[LASTEvent])(XEvent *)`. It is built once in
// newWM and never mutated at runtime, which is what makes the lookup O(1)
// instead of the per-window callback registration xgbutil's xevent
// package would otherwise encourage (SPEC_FULL.md §4.6 expansion).
type dispatchTable [256]handlerFunc

func buildDispatchTable() dispatchTable {
	return dispatchTable{
		xproto.ButtonPress:      (*WM).onButtonPress,
		xproto.ClientMessage:    (*WM).onClientMessage,
		xproto.ConfigureRequest: (*WM).onConfigureRequest,
		xproto.ConfigureNotify:  (*WM).onConfigureNotify,
		xproto.DestroyNotify:    (*WM).onDestroyNotify,
		xproto.UnmapNotify:      (*WM).onUnmapNotify,
		xproto.EnterNotify:      (*WM).onEnterNotify,
		xproto.Expose:           (*WM).onExpose,
		xproto.FocusIn:          (*WM).onFocusIn,
		xproto.KeyPress:         (*WM).onKeyPress,
		xproto.MappingNotify:    (*WM).onMappingNotify,
		xproto.MapRequest:       (*WM).onMapRequest,
		xproto.PropertyNotify:   (*WM).onPropertyNotify,
	}
}

// run is the single-threaded cooperative main loop (spec.md §5): it
// blocks fetching the next X event, dispatches it, and repeats until
// wm.running is cleared. There are no worker goroutines touching state
// here; the only concurrent goroutine in the whole program is the SIGCHLD
// reaper (wm.go), which never touches WM state.
func (wm *WM) run() {
	for wm.running {
		var ev xgb.Event
		var xerr xgb.Error
		if len(wm.pending) > 0 {
			ev, wm.pending = wm.pending[0], wm.pending[1:]
		} else {
			ev, xerr = wm.conn.WaitForEvent()
		}
		if xerr != nil {
			handleXError(xerr)
			continue
		}
		if ev == nil {
			continue
		}
		wm.dispatch(ev)
	}
}

func (wm *WM) dispatch(ev xgb.Event) {
	code := eventCode(ev)
	if h := wm.handlers[code]; h != nil {
		h(wm, ev)
	}
	// unmatched event types are ignored, per spec.md §4.6.
}

func eventCode(ev xgb.Event) byte {
	switch ev.(type) {
	case xproto.ButtonPressEvent:
		return xproto.ButtonPress
	case xproto.ClientMessageEvent:
		return xproto.ClientMessage
	case xproto.ConfigureRequestEvent:
		return xproto.ConfigureRequest
	case xproto.ConfigureNotifyEvent:
		return xproto.ConfigureNotify
	case xproto.DestroyNotifyEvent:
		return xproto.DestroyNotify
	case xproto.UnmapNotifyEvent:
		return xproto.UnmapNotify
	case xproto.EnterNotifyEvent:
		return xproto.EnterNotify
	case xproto.ExposeEvent:
		return xproto.Expose
	case xproto.FocusInEvent:
		return xproto.FocusIn
	case xproto.KeyPressEvent:
		return xproto.KeyPress
	case xproto.MappingNotifyEvent:
		return xproto.MappingNotify
	case xproto.MapRequestEvent:
		return xproto.MapRequest
	case xproto.PropertyNotifyEvent:
		return xproto.PropertyNotify
	default:
		return 0
	}
}

// --- handlers, one per row of spec.md §4.6's table ---

func (wm *WM) onButtonPress(raw xgb.Event) {
	ev := raw.(xproto.ButtonPressEvent)
	region, arg := wm.classifyClick(ev)
	mods := cleanMask(ev.State)
	wm.resolveButton(region, mods, ev.Detail, arg)
}

func (wm *WM) onClientMessage(raw xgb.Event) {
	ev := raw.(xproto.ClientMessageEvent)
	if ev.Type != wm.atoms.NetWMState || ev.Format != 32 {
		return
	}
	c := wm.clientForWindow(ev.Window)
	if c == nil {
		return
	}
	action := ev.Data.Data32[0]
	wantsFullscreen := xproto.Atom(ev.Data.Data32[1]) == wm.atoms.NetWMStateFullscreen ||
		xproto.Atom(ev.Data.Data32[2]) == wm.atoms.NetWMStateFullscreen
	if !wantsFullscreen {
		return
	}
	switch action {
	case netWMStateAdd:
		wm.setFullscreen(c, true)
	case netWMStateRemove:
		wm.setFullscreen(c, false)
	case netWMStateToggle:
		wm.setFullscreen(c, c.fullscreen == nil)
	}
}

const (
	netWMStateRemove = 0
	netWMStateAdd    = 1
	netWMStateToggle = 2
)

// setFullscreen implements the ClientMessage contract (spec.md §4.6) and
// testable property 8 (round-trip geometry restore).
func (wm *WM) setFullscreen(c *Client, full bool) {
	if full && c.fullscreen == nil {
		c.fullscreen = &fullscreenSnapshot{geom: c.geomSnapshot(), wasFloating: c.isFloating}
		c.isFloating = true
		c.BW = 0
		wm.resizeClient(c, c.mon.MX, c.mon.MY, c.mon.MW, c.mon.MH, true)
		raiseClient(wm.conn, c.win)
	} else if !full && c.fullscreen != nil {
		snap := c.fullscreen
		c.fullscreen = nil
		c.isFloating = snap.wasFloating
		wm.resizeClient(c, snap.geom.X, snap.geom.Y, snap.geom.W, snap.geom.H, false)
		c.BW = snap.geom.BW
		wm.arrange(c.mon)
	}
}

func (wm *WM) onConfigureRequest(raw xgb.Event) {
	ev := raw.(xproto.ConfigureRequestEvent)
	c := wm.clientForWindow(ev.Window)
	if c == nil {
		// unmanaged window: pass the request through unchanged.
		values, mask := configureValues(ev)
		xproto.ConfigureWindow(wm.conn, ev.Window, mask, values)
		return
	}
	_, floatLayout := c.mon.currentLayout().Layout.(floatingLayout)
	if floatLayout || c.isFloating {
		moved := false
		if ev.ValueMask&xproto.ConfigWindowX != 0 {
			c.X = int(ev.X)
			moved = true
		}
		if ev.ValueMask&xproto.ConfigWindowY != 0 {
			c.Y = int(ev.Y)
			moved = true
		}
		if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
			c.W = int(ev.Width)
		}
		if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
			c.H = int(ev.Height)
		}
		if c.X+c.W > c.mon.MX+c.mon.MW && ev.ValueMask&(xproto.ConfigWindowWidth) != 0 {
			c.X = c.mon.MX + (c.mon.MW-c.W)/2 // center if overflow
		}
		if c.Y+c.H > c.mon.MY+c.mon.MH && ev.ValueMask&(xproto.ConfigWindowHeight) != 0 {
			c.Y = c.mon.MY + (c.mon.MH-c.H)/2
		}
		wm.configureClient(c)
		if moved && ev.ValueMask&(xproto.ConfigWindowWidth|xproto.ConfigWindowHeight) == 0 {
			wm.sendConfigureNotify(c)
		}
	} else {
		wm.sendConfigureNotify(c)
	}
}

func configureValues(ev xproto.ConfigureRequestEvent) ([]uint32, uint16) {
	var values []uint32
	if ev.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(ev.X))
	}
	if ev.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(ev.Y))
	}
	if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(ev.Width))
	}
	if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(ev.Height))
	}
	if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(ev.BorderWidth))
	}
	if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(ev.Sibling))
	}
	if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(ev.StackMode))
	}
	return values, ev.ValueMask
}

func (wm *WM) configureClient(c *Client) {
	if wm.conn == nil { // unit tests exercise layout math without a live X connection
		return
	}
	xproto.ConfigureWindow(wm.conn, c.win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(c.X), uint32(c.Y), uint32(c.W), uint32(c.H), uint32(c.BW)})
}

func (wm *WM) sendConfigureNotify(c *Client) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            c.win,
		Window:           c.win,
		X:                int16(c.X),
		Y:                int16(c.Y),
		Width:            uint16(c.W),
		Height:           uint16(c.H),
		BorderWidth:      uint16(c.BW),
		OverrideRedirect: false,
	}
	xproto.SendEvent(wm.conn, false, c.win, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

func (wm *WM) onConfigureNotify(raw xgb.Event) {
	ev := raw.(xproto.ConfigureNotifyEvent)
	if ev.Window != wm.root {
		return
	}
	wm.screenW, wm.screenH = int(ev.Width), int(ev.Height)
	wm.recreateBarPixmaps()
	wm.updateMonitors()
	for m := wm.mons; m != nil; m = m.next {
		wm.arrange(m)
	}
}

func (wm *WM) onDestroyNotify(raw xgb.Event) {
	ev := raw.(xproto.DestroyNotifyEvent)
	if c := wm.clientForWindow(ev.Window); c != nil {
		wm.unmanage(c, true)
	}
}

func (wm *WM) onUnmapNotify(raw xgb.Event) {
	ev := raw.(xproto.UnmapNotifyEvent)
	if c := wm.clientForWindow(ev.Window); c != nil {
		wm.unmanage(c, false)
	}
}

func (wm *WM) onEnterNotify(raw xgb.Event) {
	ev := raw.(xproto.EnterNotifyEvent)
	normalOrRoot := (ev.Mode == xproto.NotifyModeNormal && ev.Detail != xproto.NotifyDetailInferior) ||
		ev.Event == wm.root
	if !normalOrRoot {
		return
	}
	c := wm.clientForWindow(ev.Event)
	if c == nil && ev.Event != wm.root {
		return
	}
	if m := wm.monitorForWindow(ev.Event); m != nil && m != wm.selMon {
		wm.selMon = m
	}
	if c != nil {
		wm.focus(c)
	}
}

func (wm *WM) onExpose(raw xgb.Event) {
	ev := raw.(xproto.ExposeEvent)
	if ev.Count != 0 {
		return
	}
	for m := wm.mons; m != nil; m = m.next {
		if m.barWin == ev.Window {
			wm.drawBar(m)
		}
	}
}

// onFocusIn defends against broken clients that forcibly steal input
// focus. This is not dead code (Design Notes §9 "focusin defense" — the
// comment in dwm.c is preserved here by this function existing at all).
func (wm *WM) onFocusIn(raw xgb.Event) {
	ev := raw.(xproto.FocusInEvent)
	if wm.focused != nil && ev.Event != wm.focused.win {
		wm.setInputFocus(wm.focused)
	}
}

func (wm *WM) onKeyPress(raw xgb.Event) {
	ev := raw.(xproto.KeyPressEvent)
	mods := cleanMask(ev.State)
	wm.resolveKey(mods, ev.Detail)
}

func (wm *WM) onMappingNotify(raw xgb.Event) {
	ev := raw.(xproto.MappingNotifyEvent)
	if ev.Request == xproto.MappingKeyboard || ev.Request == xproto.MappingModifier {
		wm.grabKeys()
	}
}

func (wm *WM) onMapRequest(raw xgb.Event) {
	ev := raw.(xproto.MapRequestEvent)
	if wm.clientForWindow(ev.Window) != nil {
		return
	}
	attrs, err := xproto.GetWindowAttributes(wm.conn, ev.Window).Reply()
	if err != nil || attrs.OverrideRedirect {
		return
	}
	wm.manage(ev.Window)
}

func (wm *WM) onPropertyNotify(raw xgb.Event) {
	ev := raw.(xproto.PropertyNotifyEvent)
	if ev.Window == wm.root && ev.Atom == atomWMName(wm) {
		wm.updateStatus()
		return
	}
	c := wm.clientForWindow(ev.Window)
	if c == nil {
		return
	}
	switch ev.Atom {
	case atomWMTransientFor(wm):
		if !c.isFloating {
			if tf, err := icccm.WmTransientForGet(wm.xu, c.win); err == nil && tf != 0 {
				if wm.clientForWindow(tf) != nil {
					c.isFloating = true
					wm.arrange(c.mon)
				}
			}
		}
	case atomWMNormalHints(wm):
		wm.updateSizeHints(c)
	case atomWMHints(wm):
		wm.updateWMHints(c)
		wm.redrawAllBars()
	case wm.atoms.NetWMName, atomWMName(wm):
		wm.updateTitle(c)
	}
}
