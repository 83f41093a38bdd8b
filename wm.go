package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// WM is the global state described in spec.md §3: the monitor list,
// selMon, atom tables, numlock mask, running flag and status text, plus
// the connection handles everything else hangs off of.
type WM struct {
	xu   *xgbutil.XUtil
	conn *xgb.Conn
	root xproto.Window

	screenW, screenH int

	atoms Atoms

	mons   *Monitor
	selMon *Monitor

	focused *Client
	status  string

	cfg      *Config
	handlers dispatchTable

	barRenderer BarRenderer

	running bool

	// pending holds events drained (but not discarded) by
	// drainEnterNotify/dispatch ordering so no event is ever lost even
	// though some are peeked out of WaitForEvent order.
	pending []xgb.Event
}

// activeWM is the single running instance. A tiling WM is inherently a
// singleton process (it is the one client holding substructure-redirect
// on the root), so a package-level pointer mirrors dwm.c's global
// variables rather than threading *WM through every free function that
// needs the screen dimensions (geometry.go's interactive-clamp branch).
var activeWM *WM

// newWM connects to the X server, interns atoms, builds the dispatch
// table and discovers the initial monitor layout. It does not yet start
// the event loop or manage any windows (see scan/run).
func newWM(cfg *Config, renderer BarRenderer) (*WM, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	wm := &WM{
		xu:          xu,
		conn:        xu.Conn(),
		root:        xu.RootWin(),
		cfg:         cfg,
		barRenderer: renderer,
		running:     true,
	}
	activeWM = wm

	if geom, err := xproto.GetGeometry(wm.conn, xproto.Drawable(wm.root)).Reply(); err == nil {
		wm.screenW, wm.screenH = int(geom.Width), int(geom.Height)
	}

	wm.checkOtherWM()
	internAtoms(wm)
	wm.discoverNumLockMask()
	wm.handlers = buildDispatchTable()

	xproto.ChangeWindowAttributes(wm.conn, wm.root, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
			xproto.EventMaskButtonPress | xproto.EventMaskEnterWindow |
			xproto.EventMaskLeaveWindow | xproto.EventMaskStructureNotify |
			xproto.EventMaskPropertyChange),
	})

	wm.updateMonitors()
	wm.grabKeys()

	return wm, nil
}

// scan adopts every existing, already-mapped top-level window as a
// Client, per the startup half of the Client lifecycle in spec.md §3.
func (wm *WM) scan() {
	tree, err := xproto.QueryTree(wm.conn, wm.root).Reply()
	if err != nil {
		return
	}
	for _, win := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(wm.conn, win).Reply()
		if err != nil || attrs.OverrideRedirect {
			continue
		}
		if attrs.MapState == xproto.MapStateViewable {
			wm.manage(win)
		}
	}
}

// cleanup reverses setup on orderly shutdown: unfocus every client
// (unfocused button grabs, normal border, input focus back to the root),
// ungrab keys, release the connection. Clients are not detached from their
// views. There is no session-save (spec.md §1 non-goals).
func (wm *WM) cleanup() {
	for m := wm.mons; m != nil; m = m.next {
		for _, v := range m.views {
			for _, c := range append([]*Client(nil), v.clients...) {
				wm.unfocusClient(c, true)
			}
		}
	}
	xproto.UngrabKey(wm.conn, xproto.GrabAny, wm.root, xproto.ModMaskAny)
	wm.conn.Close()
}

func (wm *WM) pointerPos() (int, int) {
	reply, err := xproto.QueryPointer(wm.conn, wm.root).Reply()
	if err != nil {
		return 0, 0
	}
	return int(reply.RootX), int(reply.RootY)
}

// recreateBarPixmaps is a no-op seam for the out-of-scope bar renderer:
// the core just needs to tell it the screen size changed so it can
// reallocate its pixmap; actual pixmap/GC handling is out of scope
// (spec.md §1).
func (wm *WM) recreateBarPixmaps() {
	if r, ok := wm.barRenderer.(interface{ Resize(w, h int) }); ok {
		r.Resize(wm.screenW, wm.screenH)
	}
}

// installSignalHandlers starts the single deliberate exception to "no
// worker goroutines touch state" (spec.md §5 expansion): a SIGCHLD
// reaper. It only calls wait4; it never reads or writes WM state.
func installSignalHandlers() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGCHLD)
	go func() {
		for range ch {
			for {
				var status syscall.WaitStatus
				pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG, nil)
				if pid <= 0 || err != nil {
					break
				}
			}
		}
	}()
}

func fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
