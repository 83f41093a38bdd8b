package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
)

func wmNameOf(wm *WM, win xproto.Window) (string, error) {
	return icccm.WmNameGet(wm.xu, win)
}

func atomWMName(wm *WM) xproto.Atom          { return wm.xu.Atm("WM_NAME") }
func atomWMTransientFor(wm *WM) xproto.Atom  { return wm.xu.Atm("WM_TRANSIENT_FOR") }
func atomWMNormalHints(wm *WM) xproto.Atom   { return wm.xu.Atm("WM_NORMAL_HINTS") }
func atomWMHints(wm *WM) xproto.Atom         { return wm.xu.Atm("WM_HINTS") }

// manage adopts a newly mapped (or startup-scanned) window as a Client,
// per spec.md §4.6's MapRequest row and the Client lifecycle in §3.
func (wm *WM) manage(win xproto.Window) {
	geom, err := xproto.GetGeometry(wm.conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return
	}

	c := &Client{
		win: win,
		X:   int(geom.X), Y: int(geom.Y),
		W: int(geom.Width), H: int(geom.Height),
		BW: wm.cfg.BorderPX,
	}

	m := wm.monitorForPoint(c.X, c.Y)
	if m == nil {
		m = wm.selMon
	}
	c.mon = m
	c.view = m.selView

	wm.updateSizeHints(c)
	wm.updateWMHints(c)
	wm.updateTitle(c)

	if tf, err := icccm.WmTransientForGet(wm.xu, win); err == nil && tf != 0 {
		if parent := wm.clientForWindow(tf); parent != nil {
			c.mon = parent.mon
			c.view = parent.view
			c.isFloating = true
		}
	}

	if c.X+c.W > c.mon.MX+c.mon.MW {
		c.X = c.mon.MX + c.mon.MW - c.W
	}
	if c.Y+c.H > c.mon.MY+c.mon.MH {
		c.Y = c.mon.MY + c.mon.MH - c.H
	}
	c.X = maxInt(c.X, c.mon.MX)
	c.Y = maxInt(c.Y, c.mon.MY)
	c.floatGeom = c.geomSnapshot()

	xproto.ConfigureWindow(wm.conn, win, xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(c.BW)})
	wm.setBorder(c, wm.cfg.ColNormBorder)
	wm.configureClient(c)

	xproto.ChangeWindowAttributes(wm.conn, win, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
			xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify),
	})

	v := m.views[c.view]
	attach(v, c)
	attachstack(v, c)

	xproto.MapWindow(wm.conn, win)
	wm.arrange(m)
	wm.focus(c)
	wm.redrawAllBars()
}

// unmanage removes c from the model. destroyed distinguishes the
// DestroyNotify path (window already gone, skip further X requests on it)
// from UnmapNotify (window still exists, nothing further required either
// since the client itself unmapped).
func (wm *WM) unmanage(c *Client, destroyed bool) {
	m := c.mon
	v := m.views[c.view]
	detach(v, c)
	detachstack(v, c)

	if wm.focused == c {
		wm.focused = nil
		wm.focus(nil)
	}
	wm.arrange(m)
	wm.redrawAllBars()
	_ = destroyed // retained for symmetry with spec.md's two distinct events
}

func (wm *WM) updateSizeHints(c *Client) {
	nh, err := icccm.WmNormalHintsGet(wm.xu, c.win)
	if err != nil {
		c.baseW, c.baseH = 0, 0
		c.incW, c.incH = 0, 0
		c.minW, c.minH = 0, 0
		c.maxW, c.maxH = 0, 0
		c.minA, c.maxA = 0, 0
		c.isFixed = false
		return
	}
	if nh.Flags&icccm.SizeHintPBaseSize != 0 {
		c.baseW, c.baseH = nh.BaseWidth, nh.BaseHeight
	} else if nh.Flags&icccm.SizeHintPMinSize != 0 {
		c.baseW, c.baseH = nh.MinWidth, nh.MinHeight
	}
	if nh.Flags&icccm.SizeHintPResizeInc != 0 {
		c.incW, c.incH = nh.WidthInc, nh.HeightInc
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		c.maxW, c.maxH = nh.MaxWidth, nh.MaxHeight
	}
	if nh.Flags&icccm.SizeHintPMinSize != 0 {
		c.minW, c.minH = nh.MinWidth, nh.MinHeight
	} else if nh.Flags&icccm.SizeHintPBaseSize != 0 {
		c.minW, c.minH = nh.BaseWidth, nh.BaseHeight
	}
	if nh.Flags&icccm.SizeHintPAspect != 0 && nh.MinAspectDen != 0 && nh.MaxAspectNum != 0 {
		c.minA = float64(nh.MinAspectDen) / float64(nh.MinAspectNum)
		c.maxA = float64(nh.MaxAspectNum) / float64(nh.MaxAspectDen)
	}
	c.isFixed = c.maxW > 0 && c.maxH > 0 && c.maxW == c.minW && c.maxH == c.minH
}

func (wm *WM) updateWMHints(c *Client) {
	hints, err := icccm.WmHintsGet(wm.xu, c.win)
	if err != nil {
		return
	}
	if c == wm.focused && hints.Flags&icccm.HintUrgency != 0 {
		// never mark the currently focused client urgent
		hints.Flags &^= icccm.HintUrgency
		icccm.WmHintsSet(wm.xu, c.win, hints)
	} else {
		c.isUrgent = hints.Flags&icccm.HintUrgency != 0
	}
	if hints.Flags&icccm.HintInput != 0 {
		c.neverFocus = hints.Input == 0
	} else {
		c.neverFocus = false
	}
}

func (wm *WM) clearUrgencyHint(c *Client) {
	hints, err := icccm.WmHintsGet(wm.xu, c.win)
	if err != nil {
		return
	}
	hints.Flags &^= icccm.HintUrgency
	icccm.WmHintsSet(wm.xu, c.win, hints)
}

func (wm *WM) updateTitle(c *Client) {
	name, err := icccm.WmNameGet(wm.xu, c.win)
	if err != nil || name == "" {
		c.setName("")
		return
	}
	c.setName(name)
}

// sendProtocolEvent sends a WM_PROTOCOLS client message for protocol
// (e.g. WM_TAKE_FOCUS or WM_DELETE_WINDOW) only if c advertises support
// for it via WM_PROTOCOLS.
func (wm *WM) sendProtocolEvent(c *Client, protocol xproto.Atom) bool {
	protos, err := icccm.WmProtocolsGet(wm.xu, c.win)
	if err != nil {
		return false
	}
	name, _ := wm.xu.AtomName(protocol)
	supports := false
	for _, p := range protos {
		if p == name {
			supports = true
			break
		}
	}
	if !supports {
		return false
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: c.win,
		Type:   wm.atoms.WMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([5]uint32{
			uint32(protocol), xproto.TimeCurrentTime, 0, 0, 0,
		}),
	}
	xproto.SendEvent(wm.conn, false, c.win, xproto.EventMaskNoEvent, string(ev.Bytes()))
	return true
}

// killClientHard is the fallback for clients that don't support
// WM_DELETE_WINDOW: forcibly kill the X client that owns the window
// (spec.md §7's killclient fatal-close, run inside withServerGrab).
func killClientHard(wm *WM, c *Client) {
	xproto.KillClient(wm.conn, uint32(c.win))
}
