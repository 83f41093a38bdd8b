package main

import "strconv"

// Layout computes tiled-client geometry for a monitor's selected view.
// The closed set below (tile, mirrorTile, monocle, floatingLayout) is
// Design Notes §9's tagged-alternative set in place of dwm.c's function
// pointers: new layouts are added by extending this set, not by
// registering callbacks at runtime.
type Layout interface {
	// arrange positions m's tiled clients. The floating layout is the
	// variant whose arrange step is a no-op (spec.md §4.4).
	arrange(wm *WM, m *Monitor)
	// symbol is the bar-facing label; monocle overrides it dynamically
	// with the count of all clients in the view (floating included) via
	// symbolFor instead.
	symbol() string
}

// LayoutEntry pairs a layout with its config-facing symbol, mirroring
// spec.md §6's "(symbol, arrange-fn) pair" config entry.
type LayoutEntry struct {
	Symbol string
	Layout Layout
}

type tileLayout struct{}
type mirrorTileLayout struct{}
type monocleLayout struct{}
type floatingLayout struct{}

func (tileLayout) symbol() string       { return "[]=" }
func (mirrorTileLayout) symbol() string { return "TTT" }
func (monocleLayout) symbol() string    { return "[M]" }
func (floatingLayout) symbol() string   { return "><>" }

// symbolFor returns the label actually shown for m's current layout,
// applying monocle's dynamic "[N]" override (spec.md §4.4: N = total
// clients in the view, including floating).
func symbolFor(m *Monitor) string {
	entry := m.currentLayout()
	if _, ok := entry.Layout.(monocleLayout); ok {
		return monocleSymbol(len(m.selectedView().clients))
	}
	return entry.Symbol
}

// arrange runs m's current layout against its selected view and then
// restacks (C5) to keep Z-order consistent with the new geometry.
func (wm *WM) arrange(m *Monitor) {
	if m == nil {
		return
	}
	m.currentLayout().Layout.arrange(wm, m)
	wm.restack(m)
}

func (tileLayout) arrange(wm *WM, m *Monitor) {
	tiled := m.selectedView().tiledClients()
	n := len(tiled)
	if n == 0 {
		return
	}
	wa := m.workArea()
	bw := wm.cfg.BorderPX

	masterW := wa.W
	if n > 1 {
		masterW = int(float64(wa.W) * m.selectedView().mfact)
	}

	master := tiled[0]
	wm.resizeClient(master, wa.X, wa.Y, masterW-2*bw, wa.H-2*bw, false)

	if n == 1 {
		return
	}

	stack := tiled[1:]
	stackCount := len(stack)
	stackH := wa.H / stackCount
	remainder := wa.H % stackCount
	if stackH < barHeightPX {
		// collapse to a single full-height slot (§4.4 edge case)
		stackH = wa.H
		remainder = 0
		stackCount = 1
		stack = stack[:1]
	}

	y := wa.Y
	for i, c := range stack {
		h := stackH
		if i < remainder {
			h++
		}
		x := wa.X + masterW
		w := wa.right() - x - 2*bw
		if i == len(stack)-1 {
			h = wa.bottom() - y - 2*bw
		} else {
			h -= 2 * bw
		}
		wm.resizeClient(c, x, y, w, h, false)
		y += h + 2*bw
	}
}

func (mirrorTileLayout) arrange(wm *WM, m *Monitor) {
	tiled := m.selectedView().tiledClients()
	n := len(tiled)
	if n == 0 {
		return
	}
	wa := m.workArea()
	bw := wm.cfg.BorderPX

	masterH := wa.H
	if n > 1 {
		masterH = int(float64(wa.H) * m.selectedView().mfact)
	}

	master := tiled[0]
	wm.resizeClient(master, wa.X, wa.Y, wa.W-2*bw, masterH-2*bw, false)

	if n == 1 {
		return
	}

	stack := tiled[1:]
	stackCount := len(stack)
	stackW := wa.W / stackCount
	remainder := wa.W % stackCount
	if stackW < barHeightPX {
		stackW = wa.W
		remainder = 0
		stackCount = 1
		stack = stack[:1]
	}

	x := wa.X
	y := wa.Y + masterH
	for i, c := range stack {
		w := stackW
		if i < remainder {
			w++
		}
		h := wa.bottom() - y - 2*bw
		if i == len(stack)-1 {
			w = wa.right() - x - 2*bw
		} else {
			w -= 2 * bw
		}
		wm.resizeClient(c, x, y, w, h, false)
		x += w + 2*bw
	}
}

func (monocleLayout) arrange(wm *WM, m *Monitor) {
	wa := m.workArea()
	bw := wm.cfg.BorderPX
	for _, c := range m.selectedView().tiledClients() {
		wm.resizeClient(c, wa.X, wa.Y, wa.W-2*bw, wa.H-2*bw, false)
	}
}

// floatingLayout's arrange step is intentionally absent: positions are
// whatever the client last requested (§4.1 still clamps to the monitor).
func (floatingLayout) arrange(wm *WM, m *Monitor) {}

func monocleSymbol(n int) string {
	return "[" + strconv.Itoa(n) + "]"
}

// resizeClient recomputes c's geometry via applySizeHints and, if it
// changed, both updates the model and issues the ConfigureWindow (this is
// the one seam between the pure layout math and the X side effect, kept
// here because every layout needs it identically).
func (wm *WM) resizeClient(c *Client, x, y, w, h int, interact bool) {
	if c.resize(x, y, w, h, interact, wm.cfg.ResizeHints) {
		wm.configureClient(c)
	}
}
