package main

import (
	"testing"

	"github.com/BurntSushi/xgbutil/xinerama"
)

func TestDedupeHeadsRemovesExactDuplicates(t *testing.T) {
	heads := xinerama.Heads{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 0, Y: 0, Width: 1920, Height: 1080}, // clone, e.g. mirrored output
		{X: 1920, Y: 0, Width: 1280, Height: 1024},
	}
	got := dedupeHeads(heads)
	if len(got) != 2 {
		t.Fatalf("expected 2 unique heads, got %d: %+v", len(got), got)
	}
}

// S6: removing a monitor rehomes all of its clients onto monitor 0's
// matching view.
func TestRemoveLastMonitorRehomesClients(t *testing.T) {
	cfg := DefaultConfig()
	entry := cfg.Layouts[0]
	m0 := newMonitor(0, cfg.MFact, entry)
	m1 := newMonitor(1, cfg.MFact, entry)
	m0.next = m1

	wm := &WM{cfg: cfg, mons: m0, selMon: m1}

	c := &Client{win: 7, mon: m1, view: 2}
	attach(m1.views[2], c)
	attachstack(m1.views[2], c)

	wm.removeLastMonitor()

	if wm.monitorCount() != 1 {
		t.Fatalf("expected 1 monitor remaining, got %d", wm.monitorCount())
	}
	if c.mon != m0 || c.view != 2 {
		t.Fatalf("expected client rehomed to monitor 0 view 2, got mon=%v view=%d", c.mon, c.view)
	}
	if len(m0.views[2].clients) != 1 || m0.views[2].clients[0] != c {
		t.Fatalf("expected client attached to monitor 0's view 2 client list")
	}
	if wm.selMon != m0 {
		t.Fatalf("expected selMon repointed to surviving monitor")
	}
}

func TestMonitorCountAndAppend(t *testing.T) {
	wm := &WM{}
	if wm.monitorCount() != 0 {
		t.Fatalf("expected 0 monitors initially")
	}
	wm.appendMonitor(newMonitor(0, 0.55, nil))
	wm.appendMonitor(newMonitor(1, 0.55, nil))
	if wm.monitorCount() != 2 {
		t.Fatalf("expected 2 monitors after two appends, got %d", wm.monitorCount())
	}
}

func TestUpdateWorkAreaInvariant(t *testing.T) {
	m := newMonitor(0, 0.55, nil)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080

	m.showBar = false
	m.updateWorkArea()
	if !m.rectEquals(m.WX, m.WY, m.WW, m.WH) {
		t.Fatalf("expected work area == screen area when bar hidden")
	}

	m.showBar = true
	m.topBar = true
	m.updateWorkArea()
	if m.WH != 1080-barHeightPX || m.WY != barHeightPX {
		t.Fatalf("expected top bar to shrink work area from the top, got WY=%d WH=%d", m.WY, m.WH)
	}

	m.topBar = false
	m.updateWorkArea()
	if m.WH != 1080-barHeightPX || m.WY != 0 {
		t.Fatalf("expected bottom bar to shrink work area at the bottom, got WY=%d WH=%d", m.WY, m.WH)
	}
}
