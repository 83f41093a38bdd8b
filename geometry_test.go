package main

import "testing"

func newTestClient(w, h int) *Client {
	m := &Monitor{MX: 0, MY: 0, MW: 1920, MH: 1080}
	m.WX, m.WY, m.WW, m.WH = 0, 0, 1920, 1080
	return &Client{X: 0, Y: 0, W: w, H: h, BW: 1, mon: m}
}

// testable property 6: applysizehints is idempotent.
func TestApplySizeHintsIdempotent(t *testing.T) {
	c := newTestClient(400, 300)
	c.incW, c.incH = 10, 10
	c.minW, c.minH = 50, 50

	x1, y1, w1, h1, _ := applySizeHints(c, c.X, c.Y, c.W, c.H, false, true)
	c.X, c.Y, c.W, c.H = x1, y1, w1, h1

	x2, y2, w2, h2, changed := applySizeHints(c, c.X, c.Y, c.W, c.H, false, true)
	if changed {
		t.Fatalf("applySizeHints not idempotent: (%d,%d,%d,%d) -> (%d,%d,%d,%d)",
			c.X, c.Y, c.W, c.H, x2, y2, w2, h2)
	}
}

func TestApplySizeHintsClampsToMinMax(t *testing.T) {
	c := newTestClient(400, 300)
	c.minW, c.minH = 200, 200
	c.maxW, c.maxH = 500, 500

	_, _, w, h, _ := applySizeHints(c, 0, 0, 50, 50, false, true)
	if w < c.minW || h < c.minH {
		t.Fatalf("expected clamp to min, got %dx%d", w, h)
	}

	_, _, w, h, _ = applySizeHints(c, 0, 0, 900, 900, false, true)
	if w > c.maxW || h > c.maxH {
		t.Fatalf("expected clamp to max, got %dx%d", w, h)
	}
}

func TestApplySizeHintsChangedFlag(t *testing.T) {
	c := newTestClient(400, 300)
	_, _, _, _, changed := applySizeHints(c, c.X, c.Y, c.W, c.H, false, false)
	if changed {
		t.Fatalf("expected no change when proposed geometry equals current")
	}
	_, _, _, _, changed = applySizeHints(c, 10, 10, c.W, c.H, false, false)
	if !changed {
		t.Fatalf("expected change flag when position differs")
	}
}

func TestResizeFixedClientHonorsMinEqualsMax(t *testing.T) {
	c := newTestClient(300, 300)
	c.minW, c.maxW = 300, 300
	c.minH, c.maxH = 300, 300
	c.isFixed = c.maxW == c.minW && c.maxH == c.minH
	if !c.isFixed {
		t.Fatalf("expected isFixed true when min == max in both axes")
	}
	if c.resize(0, 0, 500, 400, false, true) || c.W != 300 || c.H != 300 {
		t.Fatalf("expected fixed client to stay 300x300, got %dx%d", c.W, c.H)
	}
}
