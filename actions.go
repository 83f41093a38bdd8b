package main

import (
	"log"
	"math/bits"
	"os/exec"
)

// The functions in this file are the bound actions Config's key/button
// tables point at (DESIGN.md "actions.go"). Each mirrors a same-named
// dwm.c function; argument decoding (tag bitmask → index, fixed-point
// mfact delta) happens at the boundary so the rest of the model only ever
// sees a plain int/float.

func actionFocusStack(wm *WM, arg uint32) {
	v := wm.selMon.selectedView()
	if len(v.clients) == 0 {
		return
	}
	cur := v.sel()
	idx := 0
	for i, c := range v.clients {
		if c == cur {
			idx = i
			break
		}
	}
	var next int
	if int32(arg) < 0 {
		next = (idx - 1 + len(v.clients)) % len(v.clients)
	} else {
		next = (idx + 1) % len(v.clients)
	}
	wm.focus(v.clients[next])
	wm.restack(wm.selMon)
}

// zoom promotes the selected client to master, or swaps with master if it
// already is master (dwm.c's zoom).
func actionZoom(wm *WM, _ uint32) {
	v := wm.selMon.selectedView()
	c := v.sel()
	if c == nil || len(v.tiledClients()) < 2 {
		return
	}
	if c == v.clients[0] {
		c = v.clients[1]
	}
	detach(v, c)
	attach(v, c)
	wm.focus(c)
	wm.arrange(wm.selMon)
}

func actionSetMFact(wm *WM, arg uint32) {
	wm.selMon.selectedView().setMFactDelta(decodeMFactArg(arg))
	wm.arrange(wm.selMon)
}

func actionKillClient(wm *WM, _ uint32) {
	v := wm.selMon.selectedView()
	c := v.sel()
	if c == nil {
		return
	}
	wm.withServerGrab(func() {
		if !wm.sendProtocolEvent(c, wm.atoms.WMDelete) {
			killClientHard(wm, c)
		}
	})
}

func actionQuit(wm *WM, _ uint32) {
	wm.running = false
}

func actionToggleFloating(wm *WM, _ uint32) {
	v := wm.selMon.selectedView()
	c := v.sel()
	if c == nil || c.fullscreen != nil {
		return
	}
	if c.isFloating {
		c.floatGeom = c.geomSnapshot()
		c.isFloating = false
	} else {
		c.isFloating = true
		c.restoreGeom(c.floatGeom)
	}
	wm.arrange(c.mon)
}

func actionToggleBar(wm *WM, _ uint32) {
	m := wm.selMon
	m.showBar = !m.showBar
	m.updateWorkArea()
	wm.arrange(m)
}

func actionCycleLayout(wm *WM, _ uint32) {
	wm.selMon.toggleLayout()
	wm.arrange(wm.selMon)
}

// tag moves the selected client to the view named by the bit index of
// arg (spec.md §9 open question: every tag/view binding's arg is a
// one-hot bitmask — same convention the tag bar click handler uses — and
// is converted to an index here; the index itself is never stored as a
// mask).
func actionTag(wm *WM, arg uint32) {
	v := wm.selMon.selectedView()
	c := v.sel()
	if c == nil || arg == 0 {
		return
	}
	idx := bits.TrailingZeros32(arg)
	if idx >= numViews || idx == c.view {
		return
	}
	moveClientToView(c, v, wm.selMon.views[idx], idx)
	wm.focus(nil)
	wm.arrange(wm.selMon)
}

func actionView(wm *WM, arg uint32) {
	idx := bits.TrailingZeros32(arg)
	if arg == 0 {
		idx = 0
	}
	if idx >= numViews || idx == wm.selMon.selView {
		return
	}
	wm.selMon.selView = idx
	wm.focus(nil)
	wm.arrange(wm.selMon)
}

func actionFocusMon(wm *WM, arg uint32) {
	m := wm.adjacentMonitor(int32(arg))
	if m == nil || m == wm.selMon {
		return
	}
	wm.unfocusClient(wm.focused, true)
	wm.selMon = m
	wm.focus(nil)
}

func actionTagMon(wm *WM, arg uint32) {
	v := wm.selMon.selectedView()
	c := v.sel()
	if c == nil {
		return
	}
	m := wm.adjacentMonitor(int32(arg))
	if m == nil || m == c.mon {
		return
	}
	moveClientToView(c, v, m.views[c.view], c.view)
	c.mon = m
	wm.focus(nil)
	wm.arrange(wm.selMon)
	wm.arrange(m)
}

func (wm *WM) adjacentMonitor(dir int32) *Monitor {
	n := wm.monitorCount()
	if n < 2 {
		return nil
	}
	idx := 0
	all := make([]*Monitor, 0, n)
	for m := wm.mons; m != nil; m = m.next {
		if m == wm.selMon {
			idx = len(all)
		}
		all = append(all, m)
	}
	next := (idx + int(dir) + n) % n
	return all[next]
}

// spawn launches the configured terminal (or any command the embedder's
// config points a binding at). Process spawning mechanics are an
// out-of-scope collaborator per spec.md §1; the core only invokes it.
var spawnCommand = []string{"xterm"}

func actionSpawn(wm *WM, _ uint32) {
	if len(spawnCommand) == 0 {
		return
	}
	cmd := exec.Command(spawnCommand[0], spawnCommand[1:]...)
	if err := cmd.Start(); err != nil {
		log.Printf("gowm: spawn %v failed: %v", spawnCommand, err)
	}
}

func actionMoveMouse(wm *WM, _ uint32) {
	wm.moveMouse()
}

func actionResizeMouse(wm *WM, _ uint32) {
	wm.resizeMouse()
}
