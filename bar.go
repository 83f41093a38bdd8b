package main

// BarState is the full, renderer-facing summary of what a monitor's
// status bar should display (SPEC_FULL.md §4.9 expansion). The core
// recomputes it after any transition that could change it; actually
// painting it is the out-of-scope bar-rendering collaborator's job
// (spec.md §1).
type BarState struct {
	Status       string
	LayoutSymbol string
	SelTitle     string
	Tags         [numViews]TagState
}

// TagState is the per-view summary shown in the tag bar.
type TagState struct {
	Occupied bool
	Urgent   bool
	Selected bool
}

// BarRenderer is implemented by the out-of-scope bar-pixel-drawing
// collaborator. The core only ever calls Draw; it never measures text or
// touches a pixmap itself.
type BarRenderer interface {
	Draw(mon *Monitor, state BarState)
}

// noopBarRenderer is the default until an embedder wires in a real one;
// it also backs the unit tests.
type noopBarRenderer struct{}

func (noopBarRenderer) Draw(*Monitor, BarState) {}

// updateBarState recomputes m.bar from the current model. Called after
// attach/detach, focus changes, urgency changes, layout changes and tag
// switches.
func (wm *WM) updateBarState(m *Monitor) {
	var tags [numViews]TagState
	for i, v := range m.views {
		tags[i] = TagState{
			Occupied: len(v.clients) > 0,
			Urgent:   hasUrgent(v),
			Selected: i == m.selView,
		}
	}
	sel := m.selectedView().sel()
	title := ""
	if sel != nil {
		title = sel.displayName()
	}
	m.bar = BarState{
		Status:       wm.status,
		LayoutSymbol: symbolFor(m),
		SelTitle:     title,
		Tags:         tags,
	}
}

func hasUrgent(v *View) bool {
	for _, c := range v.clients {
		if c.isUrgent {
			return true
		}
	}
	return false
}

func (wm *WM) drawBar(m *Monitor) {
	wm.updateBarState(m)
	wm.barRenderer.Draw(m, m.bar)
}

func (wm *WM) redrawAllBars() {
	for m := wm.mons; m != nil; m = m.next {
		wm.drawBar(m)
	}
}

func (wm *WM) updateStatus() {
	status, err := wmNameOf(wm, wm.root)
	if err != nil {
		status = ""
	}
	wm.status = status
	wm.redrawAllBars()
}
