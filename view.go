package main

import "golang.org/x/exp/slices"

const numViews = 9

const (
	minMFact = 0.1
	maxMFact = 0.9
)

// View is one of a monitor's 9 virtual workspaces. See spec.md §3.
//
// clients holds stable creation/promotion order (used by layouts); stack
// holds MRU order with head = most recently focused. Both are owning
// slices rather than intrusive linked lists (Design Notes §9).
type View struct {
	mfact float64

	clients []*Client
	stack   []*Client

	selLayout int // index into the monitor's two remembered layouts
}

func newView(mfact float64) *View {
	return &View{mfact: mfact}
}

// sel returns the view's selected client: the head of the focus stack, or
// nil if the view is empty. Invariant (spec.md §3): this must always equal
// the head of stack after any attach/detach sequence.
func (v *View) sel() *Client {
	if len(v.stack) == 0 {
		return nil
	}
	return v.stack[0]
}

// attach prepends c to the stable client list (dwm.c's attach: new clients
// become the new head/master).
func attach(v *View, c *Client) {
	v.clients = append([]*Client{c}, v.clients...)
}

// detach removes c from the stable client list, preserving the relative
// order of the rest.
func detach(v *View, c *Client) {
	if i := slices.Index(v.clients, c); i != -1 {
		v.clients = slices.Delete(v.clients, i, i+1)
	}
}

// attachstack prepends c to the MRU focus stack.
func attachstack(v *View, c *Client) {
	v.stack = append([]*Client{c}, v.stack...)
}

// detachstack removes c from the focus stack.
func detachstack(v *View, c *Client) {
	if i := slices.Index(v.stack, c); i != -1 {
		v.stack = slices.Delete(v.stack, i, i+1)
	}
}

// moveClientToView detaches c from both of its current view's lists and
// attaches it to both of target's lists, updating c.view atomically with
// the edits (spec.md §4.3).
func moveClientToView(c *Client, from, to *View, toIndex int) {
	detach(from, c)
	detachstack(from, c)
	c.view = toIndex
	attach(to, c)
	attachstack(to, c)
}

// tiledClients returns v.clients excluding floating windows — the set the
// layout engine positions (spec.md §4.4: "Tiled excludes floating clients").
func (v *View) tiledClients() []*Client {
	out := make([]*Client, 0, len(v.clients))
	for _, c := range v.clients {
		if !c.isFloating {
			out = append(out, c)
		}
	}
	return out
}

func clampMFact(mfact float64) float64 {
	if mfact < minMFact {
		return minMFact
	}
	if mfact > maxMFact {
		return maxMFact
	}
	return mfact
}

// setMFactDelta adjusts v.mfact by delta and clamps to [0.1, 0.9] (testable
// property 5). delta is expected in (-1, 1); values outside that are still
// clamped by clampMFact, never left out of range.
func (v *View) setMFactDelta(delta float64) {
	v.mfact = clampMFact(v.mfact + delta)
}
