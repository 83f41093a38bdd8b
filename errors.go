package main

import (
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// opcodeErrorPair is one entry of the whitelist described in spec.md §7
// kind 3: a (request major opcode, error kind) combination known to arise
// from a benign race with a window the server has already destroyed.
type opcodeErrorPair struct {
	major byte
	isBad func(xgb.Error) bool
}

var ignorableRaces = []opcodeErrorPair{
	{xproto.SetInputFocusOpcode, isError[xproto.MatchError]},
	{74 /* X_PolyText8 */, isError[xproto.DrawableError]},
	{xproto.PolyFillRectangleOpcode, isError[xproto.DrawableError]},
	{xproto.PolySegmentOpcode, isError[xproto.DrawableError]},
	{xproto.ConfigureWindowOpcode, isError[xproto.MatchError]},
	{xproto.GrabButtonOpcode, isError[xproto.AccessError]},
	{xproto.GrabKeyOpcode, isError[xproto.AccessError]},
	{xproto.CopyAreaOpcode, isError[xproto.DrawableError]},
}

func isError[T xgb.Error](e xgb.Error) bool {
	_, ok := e.(T)
	return ok
}

func majorOpcode(e xgb.Error) byte {
	switch v := e.(type) {
	case xproto.MatchError:
		return v.MajorOpcode
	case xproto.DrawableError:
		return v.MajorOpcode
	case xproto.AccessError:
		return v.MajorOpcode
	case xproto.WindowError:
		return v.MajorOpcode
	default:
		return 0
	}
}

// handleXError is the default error callback (spec.md §7). BadWindow is
// always ignored (kind 3: racing a window the server already destroyed);
// everything else is checked against the (opcode, kind) whitelist; any
// other error is forwarded (logged, since there is no "previous handler"
// object in this binding the way Xlib exposes one).
func handleXError(err xgb.Error) {
	if _, ok := err.(xproto.WindowError); ok {
		return
	}
	op := majorOpcode(err)
	for _, pair := range ignorableRaces {
		if pair.major == op && pair.isBad(err) {
			return
		}
	}
	log.Printf("gowm: X error: %v", err)
}

// startupErrorHandler is swapped in only during checkOtherWM: any error at all
// during that narrow window means another window manager already holds
// substructure-redirect on the root.
type startupErrorHandler struct {
	fired bool
}

func (h *startupErrorHandler) handle(xgb.Error) {
	h.fired = true
}

// checkOtherWM installs a temporary error handler, requests
// SubstructureRedirect on root, syncs, and aborts if the handler fired —
// exactly spec.md §6's start-up detection.
func (wm *WM) checkOtherWM() {
	probe := &startupErrorHandler{}
	wm.conn.ErrorGo = make(chan xgb.Error, 1)
	err := xproto.ChangeWindowAttributesChecked(wm.conn, wm.root, xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)}).Check()
	if err != nil {
		probe.handle(err.(xgb.Error))
	}
	if probe.fired {
		log.Fatal("gowm: another window manager is already running")
	}
}

// withServerGrab wraps a destructive sequence in a server grab plus a
// temporary error handler, guaranteeing release on every exit path
// (Design Notes §9's scope-guard pattern for the "install dummy handler,
// grab server, mutate, restore" idiom).
func (wm *WM) withServerGrab(fn func()) {
	xproto.GrabServer(wm.conn)
	defer xproto.UngrabServer(wm.conn)
	defer func() {
		// swallow any benign race surfaced synchronously during fn
		if r := recover(); r != nil {
			if e, ok := r.(xgb.Error); ok {
				handleXError(e)
				return
			}
			panic(r)
		}
	}()
	fn()
}
