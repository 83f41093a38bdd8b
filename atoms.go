package main

import "github.com/BurntSushi/xgb/xproto"

// Atoms holds every atom this WM interns: the WM protocol atoms of
// spec.md §6 plus WM_TAKE_FOCUS (used for neverFocus clients), and the
// explicit EWMH subset.
type Atoms struct {
	WMProtocols   xproto.Atom
	WMDelete      xproto.Atom
	WMState       xproto.Atom
	WMTakeFocus   xproto.Atom

	NetSupported        xproto.Atom
	NetWMName           xproto.Atom
	NetWMState          xproto.Atom
	NetWMStateFullscreen xproto.Atom
}

func internAtoms(wm *WM) {
	wm.atoms = Atoms{
		WMProtocols: wm.xu.Atm("WM_PROTOCOLS"),
		WMDelete:    wm.xu.Atm("WM_DELETE_WINDOW"),
		WMState:     wm.xu.Atm("WM_STATE"),
		WMTakeFocus: wm.xu.Atm("WM_TAKE_FOCUS"),

		NetSupported:         wm.xu.Atm("_NET_SUPPORTED"),
		NetWMName:            wm.xu.Atm("_NET_WM_NAME"),
		NetWMState:           wm.xu.Atm("_NET_WM_STATE"),
		NetWMStateFullscreen: wm.xu.Atm("_NET_WM_STATE_FULLSCREEN"),
	}

	supported := []xproto.Atom{
		wm.atoms.NetSupported,
		wm.atoms.NetWMName,
		wm.atoms.NetWMState,
		wm.atoms.NetWMStateFullscreen,
	}
	raw := make([]uint32, len(supported))
	for i, a := range supported {
		raw[i] = uint32(a)
	}
	xproto.ChangePropertyChecked(wm.conn, xproto.PropModeReplace, wm.root,
		wm.atoms.NetSupported, xproto.AtomAtom, 32, uint32(len(raw)), atomsToBytes(raw))
}

func atomsToBytes(vals []uint32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	return buf
}
