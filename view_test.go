package main

import "testing"

// testable property 5: mfact stays within [0.1, 0.9] under arbitrary deltas.
func TestSetMFactDeltaClamps(t *testing.T) {
	v := newView(0.55)

	v.setMFactDelta(-10)
	if v.mfact != minMFact {
		t.Fatalf("expected clamp to %v, got %v", minMFact, v.mfact)
	}

	v.setMFactDelta(10)
	if v.mfact != maxMFact {
		t.Fatalf("expected clamp to %v, got %v", maxMFact, v.mfact)
	}

	v.mfact = 0.5
	v.setMFactDelta(0.05)
	if v.mfact != 0.55 {
		t.Fatalf("expected 0.55, got %v", v.mfact)
	}
}

func TestAttachPrependsAndSelMatchesStackHead(t *testing.T) {
	v := newView(0.55)
	c1 := &Client{win: 1}
	c2 := &Client{win: 2}

	attach(v, c1)
	attachstack(v, c1)
	if v.sel() != c1 {
		t.Fatalf("sel should be c1 after first attach")
	}

	attach(v, c2)
	attachstack(v, c2)
	if v.clients[0] != c2 {
		t.Fatalf("attach should prepend: expected c2 at head, got %v", v.clients[0])
	}
	if v.sel() != c2 {
		t.Fatalf("sel must equal stack head (property: sel == head(stack))")
	}

	detachstack(v, c2)
	if v.sel() != c1 {
		t.Fatalf("sel should fall back to c1 after detaching c2 from stack")
	}
}

func TestDetachPreservesOrderOfRemainder(t *testing.T) {
	v := newView(0.55)
	c1, c2, c3 := &Client{win: 1}, &Client{win: 2}, &Client{win: 3}
	attach(v, c1)
	attach(v, c2)
	attach(v, c3)
	// clients is now [c3, c2, c1]

	detach(v, c2)
	if len(v.clients) != 2 || v.clients[0] != c3 || v.clients[1] != c1 {
		t.Fatalf("unexpected order after detach: %v", v.clients)
	}
}

func TestTiledClientsExcludesFloating(t *testing.T) {
	v := newView(0.55)
	tiled := &Client{win: 1}
	floating := &Client{win: 2, isFloating: true}
	attach(v, tiled)
	attach(v, floating)

	got := v.tiledClients()
	if len(got) != 1 || got[0] != tiled {
		t.Fatalf("expected only the tiled client, got %v", got)
	}
}

func TestMoveClientToViewUpdatesBothLists(t *testing.T) {
	from := newView(0.55)
	to := newView(0.55)
	c := &Client{win: 1, view: 0}
	attach(from, c)
	attachstack(from, c)

	moveClientToView(c, from, to, 3)

	if len(from.clients) != 0 || len(from.stack) != 0 {
		t.Fatalf("expected source view emptied, got clients=%v stack=%v", from.clients, from.stack)
	}
	if c.view != 3 {
		t.Fatalf("expected c.view == 3, got %d", c.view)
	}
	if to.sel() != c {
		t.Fatalf("expected target view's sel to be c")
	}
}
