package main

import "math"

// Rect is a plain (x, y, w, h) rectangle in root coordinates.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) right() int  { return r.X + r.W }
func (r Rect) bottom() int { return r.Y + r.H }

// savedGeom is a snapshot of a client's geometry used to undo a later
// transform. See Client.floatGeom and Client.fullscreen for the two
// distinct undo slots this backs.
type savedGeom struct {
	X, Y, W, H, BW int
}

func (c *Client) geomSnapshot() savedGeom {
	return savedGeom{c.X, c.Y, c.W, c.H, c.BW}
}

func (c *Client) restoreGeom(g savedGeom) {
	c.X, c.Y, c.W, c.H, c.BW = g.X, g.Y, g.W, g.H, g.BW
}

// applySizeHints runs the ICCCM §4.1.2.3 sequence against c's hints.
// The sequence is applied when resizeHintsCfg (the caller's resizehints
// config) is set or c.isFloating; otherwise no size hint is applied, only
// the position push-back and the minimum-size clamps. Returns true iff any
// of (x, y, w, h) differs from c's current geometry, so a caller can skip
// a spurious ConfigureWindow request.
func applySizeHints(c *Client, x, y, w, h int, interact bool, resizeHintsCfg bool) (int, int, int, int, bool) {
	if interact {
		if x > activeWM.screenW {
			x = activeWM.screenW - w
		}
		if y > activeWM.screenH {
			y = activeWM.screenH - h
		}
	} else {
		area := c.mon.workArea()
		if x >= area.right() {
			x = area.right() - w
		}
		if y >= area.bottom() {
			y = area.bottom() - h
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if h < barHeightPX {
		h = barHeightPX
	}
	if w < barHeightPX {
		w = barHeightPX
	}

	if resizeHintsCfg || c.isFloating {
		baseIsMin := c.baseW == c.minW && c.baseH == c.minH
		if !baseIsMin { // 1: subtract base unless base == min
			w -= c.baseW
			h -= c.baseH
		}

		// 2: clamp aspect ratio
		if c.minA > 0 && c.maxA > 0 {
			if c.maxA < float64(w)/float64(h) {
				w = int(float64(h)*c.maxA + 0.5)
			} else if c.minA < float64(h)/float64(w) {
				h = int(float64(w)*c.minA + 0.5)
			}
		}

		if baseIsMin { // 3: re-subtract base if it was kept
			w -= c.baseW
			h -= c.baseH
		}

		// 4: snap to resize increments
		if c.incW > 0 {
			w -= w % c.incW
		}
		if c.incH > 0 {
			h -= h % c.incH
		}

		// 5: restore base, then clamp to [min, max]
		w = maxInt(w+c.baseW, c.minW)
		h = maxInt(h+c.baseH, c.minH)
		if c.maxW > 0 {
			w = minInt(w, c.maxW)
		}
		if c.maxH > 0 {
			h = minInt(h, c.maxH)
		}
	}

	changed := x != c.X || y != c.Y || w != c.W || h != c.H
	return x, y, w, h, changed
}

// resize applies (x, y, w, h) through applySizeHints and, if anything
// changed, updates c's geometry and returns true. It never talks to the X
// server; the caller (layout.go's resizeClient, gestures.go) issues the ConfigureWindow
// itself once the model has settled.
func (c *Client) resize(x, y, w, h int, interact bool, resizeHintsCfg bool) bool {
	nx, ny, nw, nh, changed := applySizeHints(c, x, y, w, h, interact, resizeHintsCfg)
	if !changed {
		return false
	}
	c.X, c.Y, c.W, c.H = nx, ny, nw, nh
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absFloat(f float64) float64 {
	return math.Abs(f)
}
