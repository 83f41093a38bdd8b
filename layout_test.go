package main

import "testing"

func testWM() *WM {
	cfg := DefaultConfig()
	wm := &WM{cfg: cfg, barRenderer: noopBarRenderer{}}
	activeWM = wm
	return wm
}

func testMonitor(n int) *Monitor {
	m := newMonitor(0, 0.55, &LayoutEntry{Symbol: "[]=", Layout: tileLayout{}})
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.showBar = false
	m.updateWorkArea()
	v := m.selectedView()
	for i := 0; i < n; i++ {
		c := &Client{W: 100, H: 100, BW: 1, mon: m, view: 0}
		attach(v, c)
		attachstack(v, c)
	}
	return m
}

// testable property 4: the union of tiled-client rectangles (expanded by
// border) covers the work area exactly with no overlaps.
func TestTileLayoutCoversWorkAreaNoOverlap(t *testing.T) {
	wm := testWM()
	for n := 1; n <= 5; n++ {
		m := testMonitor(n)
		tileLayout{}.arrange(wm, m)

		wa := m.workArea()
		area := 0
		for _, c := range m.selectedView().tiledClients() {
			r := Rect{c.X, c.Y, c.W + 2*c.BW, c.H + 2*c.BW}
			if r.X < wa.X || r.Y < wa.Y || r.right() > wa.right() || r.bottom() > wa.bottom() {
				t.Fatalf("n=%d: client rect %+v escapes work area %+v", n, r, wa)
			}
			area += r.W * r.H
		}
		if want := wa.W * wa.H; area != want {
			t.Fatalf("n=%d: tiled area %d does not cover work area %d exactly", n, area, want)
		}
	}
}

// S1 — single client, tile layout, 1920x1080, bar off, borderpx=1, mfact=0.55
func TestScenarioS1(t *testing.T) {
	wm := testWM()
	wm.cfg.BorderPX = 1
	m := testMonitor(1)
	tileLayout{}.arrange(wm, m)
	c := m.selectedView().clients[0]
	if c.X != 0 || c.Y != 0 || c.W != 1918 || c.H != 1078 {
		t.Fatalf("S1: expected (0,0,1918,1078), got (%d,%d,%d,%d)", c.X, c.Y, c.W, c.H)
	}
	if symbolFor(m) != "[]=" {
		t.Fatalf("S1: expected layout symbol []=, got %s", symbolFor(m))
	}
}

// S2 — two clients, tile.
func TestScenarioS2(t *testing.T) {
	wm := testWM()
	wm.cfg.BorderPX = 1
	m := testMonitor(2)
	tileLayout{}.arrange(wm, m)
	clients := m.selectedView().clients
	master := clients[0]
	stackC := clients[1]
	if master.X != 0 || master.Y != 0 || master.W != 1054 || master.H != 1078 {
		t.Fatalf("S2: master expected (0,0,1054,1078), got (%d,%d,%d,%d)",
			master.X, master.Y, master.W, master.H)
	}
	if stackC.X != 1056 || stackC.W != 862 {
		t.Fatalf("S2: stack expected x=1056 w=862, got x=%d w=%d", stackC.X, stackC.W)
	}
}

// S3 — three clients, tile, height remainder distribution.
func TestScenarioS3(t *testing.T) {
	wm := testWM()
	wm.cfg.BorderPX = 1
	m := testMonitor(3)
	tileLayout{}.arrange(wm, m)
	clients := m.selectedView().clients
	stack := clients[1:]
	if stack[0].H != 538 || stack[1].H != 538 {
		t.Fatalf("S3: expected both stack heights 538, got %d and %d", stack[0].H, stack[1].H)
	}
}

func TestMonocleSymbolCountsAllClients(t *testing.T) {
	wm := testWM()
	m := testMonitor(2)
	m.setLayout(&LayoutEntry{Symbol: "[M]", Layout: monocleLayout{}})
	floating := &Client{W: 50, H: 50, mon: m, view: 0, isFloating: true}
	attach(m.selectedView(), floating)
	attachstack(m.selectedView(), floating)
	_ = wm
	if got := symbolFor(m); got != "[3]" {
		t.Fatalf("expected [3] (includes floating), got %s", got)
	}
}
