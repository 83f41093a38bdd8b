package main

import "github.com/BurntSushi/xgb/xproto"

// Monitor is one physical or logical screen. See spec.md §3.
type Monitor struct {
	next *Monitor
	num  int

	MX, MY, MW, MH int // screen rect
	WX, WY, WW, WH int // work-area rect (screen minus bar)

	barY      int
	barWin    xproto.Window
	showBar   bool
	topBar    bool

	views   [numViews]*View
	selView int

	layouts   [2]*LayoutEntry // current + remembered previous (dwm.c lt[2]/sellt)
	selLayout int

	bar BarState
}

func newMonitor(num int, mfact float64, defaultLayout *LayoutEntry) *Monitor {
	m := &Monitor{num: num, showBar: true, topBar: true}
	for i := range m.views {
		v := newView(mfact)
		m.views[i] = v
	}
	m.layouts[0] = defaultLayout
	m.layouts[1] = defaultLayout
	return m
}

func (m *Monitor) screen() Rect    { return Rect{m.MX, m.MY, m.MW, m.MH} }
func (m *Monitor) workArea() Rect  { return Rect{m.WX, m.WY, m.WW, m.WH} }

// selectedView returns the monitor's currently active View.
func (m *Monitor) selectedView() *View { return m.views[m.selView] }

func (m *Monitor) currentLayout() *LayoutEntry { return m.layouts[m.selLayout] }

// setLayout replaces the current layout, remembering the one it replaces
// so a "toggle back to previous layout" binding (dwm.c's lt[2]/sellt) can
// flip selLayout without losing either pointer.
func (m *Monitor) setLayout(entry *LayoutEntry) {
	if entry == m.layouts[m.selLayout] {
		return
	}
	other := 1 - m.selLayout
	m.layouts[other] = entry
	m.selLayout = other
}

func (m *Monitor) toggleLayout() {
	m.selLayout = 1 - m.selLayout
}

// barHeightPX is the bar height in pixels. The core only needs a number
// (for the work area, and to clamp client width and height against in
// applySizeHints, spec.md §4.1), not the pixels — actual text measurement
// is the out-of-scope bar renderer's job. An embedder may set it (e.g. to
// font ascent+descent+2); it defaults to 20.
var barHeightPX = 20

// updateWorkArea recomputes WX/WY/WW/WH from MX/MY/MW/MH, showBar and
// topBar, maintaining the invariant in spec.md §3: work-area equals
// screen-area when showBar is false, otherwise excludes a bar of fixed
// height at top or bottom.
func (m *Monitor) updateWorkArea() {
	m.WX, m.WY, m.WW, m.WH = m.MX, m.MY, m.MW, m.MH
	if !m.showBar {
		m.barY = -barHeightPX
		return
	}
	m.WH -= barHeightPX
	if m.topBar {
		m.barY = m.WY
		m.WY += barHeightPX
	} else {
		m.barY = m.WY + m.WH
	}
}

func (m *Monitor) rectEquals(x, y, w, h int) bool {
	return m.MX == x && m.MY == y && m.MW == w && m.MH == h
}
