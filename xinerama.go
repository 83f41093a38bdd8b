package main

import (
	"github.com/BurntSushi/xgbutil/xinerama"
)

// uniqueScreen is a deduplicated Xinerama head rect.
type uniqueScreen struct {
	x, y, w, h int
}

func dedupeHeads(heads xinerama.Heads) []uniqueScreen {
	var out []uniqueScreen
	for _, h := range heads {
		u := uniqueScreen{int(h.X), int(h.Y), int(h.Width), int(h.Height)}
		dup := false
		for _, existing := range out {
			if existing == u {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, u)
		}
	}
	return out
}

// updateMonitors implements spec.md §4.8 verbatim: query Xinerama,
// dedupe by exact rect, grow or shrink the monitor list to match, rehome
// orphaned clients on shrink, fall back to one monitor sized to the root
// display if Xinerama is unavailable, then repoint selMon to whichever
// monitor contains the root pointer.
func (wm *WM) updateMonitors() {
	var screens []uniqueScreen
	if heads, err := wm.xu.Heads(); err == nil && len(heads) > 0 {
		screens = dedupeHeads(heads)
	} else {
		screens = []uniqueScreen{{0, 0, wm.screenW, wm.screenH}}
	}

	n := wm.monitorCount()
	nn := len(screens)

	if n <= nn {
		for i := n; i < nn; i++ {
			wm.appendMonitor(newMonitor(i, wm.cfg.MFact, wm.defaultLayoutEntry()))
		}
		m := wm.mons
		i := 0
		for m != nil && i < nn {
			s := screens[i]
			if !m.rectEquals(s.x, s.y, s.w, s.h) {
				m.MX, m.MY, m.MW, m.MH = s.x, s.y, s.w, s.h
				m.updateWorkArea()
			}
			m = m.next
			i++
		}
	} else {
		// n > nn: free excess monitors from the tail, rehoming their
		// clients to the first monitor's matching view.
		for wm.monitorCount() > nn {
			wm.removeLastMonitor()
		}
		i := 0
		for m := wm.mons; m != nil && i < nn; m = m.next {
			s := screens[i]
			if !m.rectEquals(s.x, s.y, s.w, s.h) {
				m.MX, m.MY, m.MW, m.MH = s.x, s.y, s.w, s.h
				m.updateWorkArea()
			}
			i++
		}
	}

	if wm.mons == nil {
		wm.mons = newMonitor(0, wm.cfg.MFact, wm.defaultLayoutEntry())
		wm.mons.MX, wm.mons.MY, wm.mons.MW, wm.mons.MH = 0, 0, wm.screenW, wm.screenH
		wm.mons.updateWorkArea()
	}

	x, y := wm.pointerPos()
	if m := wm.monitorForPoint(x, y); m != nil {
		wm.selMon = m
	} else {
		wm.selMon = wm.mons
	}
}

func (wm *WM) monitorCount() int {
	n := 0
	for m := wm.mons; m != nil; m = m.next {
		n++
	}
	return n
}

func (wm *WM) appendMonitor(m *Monitor) {
	if wm.mons == nil {
		wm.mons = m
		return
	}
	tail := wm.mons
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = m
}

// removeLastMonitor frees the tail monitor, rehoming every client in all
// 9 of its views to monitor 0's matching view (spec.md §4.8, S6).
func (wm *WM) removeLastMonitor() {
	if wm.mons == nil || wm.mons.next == nil {
		return
	}
	var prev *Monitor
	m := wm.mons
	for m.next != nil {
		prev, m = m, m.next
	}
	first := wm.mons
	for vi := 0; vi < numViews; vi++ {
		src := m.views[vi]
		dst := first.views[vi]
		for len(src.clients) > 0 {
			c := src.clients[0]
			detach(src, c)
			detachstack(src, c)
			c.mon = first
			c.view = vi
			attach(dst, c)
			attachstack(dst, c)
		}
	}
	if prev != nil {
		prev.next = nil
	} else {
		wm.mons = nil
	}
	if wm.selMon == m {
		wm.selMon = first
	}
}

func (wm *WM) defaultLayoutEntry() *LayoutEntry {
	return wm.cfg.Layouts[0]
}
