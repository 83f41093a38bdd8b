package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// ClickRegion identifies which part of the screen a ButtonPress landed on
// (spec.md §4.6/§4.9).
type ClickRegion int

const (
	ClickTagBar ClickRegion = iota
	ClickLayoutSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientWin
	ClickRootWin
)

// cleanMask strips NumLock and CapsLock from a modifier mask so bindings
// are insensitive to either lock key (spec.md §4.9, testable property 9).
func cleanMask(m uint16) uint16 {
	return m &^ (numLockMask | xproto.ModMaskLock) & (xproto.ModMaskShift |
		xproto.ModMaskControl | xproto.ModMask1 | xproto.ModMask2 | xproto.ModMask3 |
		xproto.ModMask4 | xproto.ModMask5 | xproto.ButtonMask1 | xproto.ButtonMask2 |
		xproto.ButtonMask3 | xproto.ButtonMask4 | xproto.ButtonMask5)
}

// numLockMask is discovered once from the modifier map at startup
// (spec.md §3 "numeric lock-key mask").
var numLockMask uint16

func (wm *WM) discoverNumLockMask() {
	numLockMask = keybind.NumLockMask(wm.xu)
}

// resolveButton looks up (region, cleaned mods, button) in the button
// binding table and invokes the bound action. Tag-bar clicks with
// argument 0 substitute the actual tag mask clicked (spec.md §4.6).
func (wm *WM) resolveButton(region ClickRegion, mods uint16, button byte, clickArg uint32) {
	for _, b := range wm.cfg.Buttons {
		if b.Region != region || b.Button != button || cleanMask(b.Mods) != mods {
			continue
		}
		arg := b.Arg
		if region == ClickTagBar && arg == 0 {
			arg = clickArg
		}
		b.Action(wm, arg)
		return
	}
}

// resolveKey looks up (cleaned mods, keysym) in the key binding table.
func (wm *WM) resolveKey(mods uint16, keycode xproto.Keycode) {
	sym := keybind.KeysymGet(wm.xu, keycode, 0)
	for _, k := range wm.cfg.Keys {
		if cleanMask(k.Mods) == mods && k.Keysym == sym {
			k.Action(wm, k.Arg)
			return
		}
	}
}

// lockCombos are the four NumLock×CapsLock combinations every grab must
// be installed under (spec.md §4.9).
func lockCombos() []uint16 {
	return []uint16{0, xproto.ModMaskLock, numLockMask, numLockMask | xproto.ModMaskLock}
}

// grabKeys regrabs every configured key binding on the root window under
// all four lock combinations. Called at startup and on MappingNotify.
func (wm *WM) grabKeys() {
	xproto.UngrabKey(wm.conn, xproto.GrabAny, wm.root, xproto.ModMaskAny)
	for _, k := range wm.cfg.Keys {
		code := keybind.KeysymToKeycode(wm.xu, k.Keysym)
		if code == 0 {
			continue
		}
		for _, extra := range lockCombos() {
			xproto.GrabKey(wm.conn, true, wm.root, k.Mods|extra, code,
				xproto.GrabModeAsync, xproto.GrabModeAsync)
		}
	}
}

// grabButtons (re)installs passive button grabs on c. When focused is
// false, every button under any modifier is grabbed as well (so a plain
// click on an unfocused client reaches the WM); when focused is true, only
// the configured client-window bindings are grabbed, under all four lock
// combinations. Called on every focus change (spec.md §4.5).
func (wm *WM) grabButtons(c *Client, focused bool) {
	xproto.UngrabButton(wm.conn, xproto.ButtonIndexAny, c.win, xproto.ModMaskAny)
	if !focused {
		xproto.GrabButton(wm.conn, false, c.win,
			xproto.EventMaskButtonPress, xproto.GrabModeSync, xproto.GrabModeSync,
			0, 0, xproto.ButtonIndexAny, xproto.ModMaskAny)
	}
	for _, b := range wm.cfg.Buttons {
		if b.Region != ClickClientWin {
			continue
		}
		for _, extra := range lockCombos() {
			xproto.GrabButton(wm.conn, false, c.win,
				xproto.EventMaskButtonPress, xproto.GrabModeAsync, xproto.GrabModeSync,
				0, 0, b.Button, b.Mods|extra)
		}
	}
}

// classifyClick maps a ButtonPress to a ClickRegion and, for tag-bar
// clicks, the tag bitmask under the pointer (spec.md §4.6).
func (wm *WM) classifyClick(ev xproto.ButtonPressEvent) (ClickRegion, uint32) {
	if c := wm.clientForWindow(ev.Event); c != nil {
		return ClickClientWin, 0
	}
	for m := wm.mons; m != nil; m = m.next {
		if m.barWin == ev.Event {
			x := int(ev.EventX)
			tagWidth := 30 // placeholder slot width; real metrics live in the bar renderer
			switch {
			case x < tagWidth*numViews:
				return ClickTagBar, 1 << uint(x/tagWidth)
			case x < tagWidth*numViews+40:
				return ClickLayoutSymbol, 0
			default:
				return ClickStatusText, 0
			}
		}
	}
	return ClickRootWin, 0
}
