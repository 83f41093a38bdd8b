package main

import "testing"

// testable property 1: a client belongs to exactly one (monitor, view) pair.
func TestClientBelongsToExactlyOneView(t *testing.T) {
	cfg := DefaultConfig()
	m := newMonitor(0, cfg.MFact, cfg.Layouts[0])
	c := &Client{win: 1, mon: m, view: 2}
	attach(m.views[2], c)
	attachstack(m.views[2], c)

	found := 0
	for _, v := range m.views {
		for _, vc := range v.clients {
			if vc == c {
				found++
			}
		}
	}
	if found != 1 {
		t.Fatalf("expected client to appear in exactly one view's client list, found %d", found)
	}
}

// testable property 2: sel always equals the head of the focus stack.
func TestSelEqualsStackHeadAcrossMutations(t *testing.T) {
	v := newView(0.55)
	clients := []*Client{{win: 1}, {win: 2}, {win: 3}}
	for _, c := range clients {
		attach(v, c)
		attachstack(v, c)
		if v.sel() != v.stack[0] {
			t.Fatalf("sel diverged from stack head after attach")
		}
	}

	detachstack(v, clients[1])
	if v.sel() != v.stack[0] {
		t.Fatalf("sel diverged from stack head after detaching a non-head client")
	}

	detachstack(v, v.stack[0])
	if len(v.stack) > 0 && v.sel() != v.stack[0] {
		t.Fatalf("sel diverged from stack head after detaching the head")
	}
}

// testable property 3: selView is always a valid index into views[9].
func TestSelViewStaysInRange(t *testing.T) {
	m := newMonitor(0, 0.55, nil)
	for _, target := range []int{0, 3, 8} {
		m.selView = target
		if m.selView < 0 || m.selView >= numViews {
			t.Fatalf("selView %d out of range", m.selView)
		}
		if m.selectedView() != m.views[target] {
			t.Fatalf("selectedView() did not match views[%d]", target)
		}
	}
}

func TestUnfocusClientNoopOnNil(t *testing.T) {
	wm := &WM{cfg: DefaultConfig()}
	wm.unfocusClient(nil, false) // must not panic
}
