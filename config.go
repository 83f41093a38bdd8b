package main

import "golang.org/x/exp/maps"

// Config is the compile-time input surface described in spec.md §6: tag
// names, ordered layouts, key/button bindings, booleans, and numeric
// tunables. Nothing here is parsed from a file; it is built in Go, the
// same way the teacher's domain (dwm.c's config.h) is compiled in.
type Config struct {
	Tags [numViews]string

	Layouts []*LayoutEntry // first is the default

	Keys    []KeyBinding
	Buttons []ButtonBinding

	ShowBar     bool
	TopBar      bool
	ResizeHints bool

	BorderPX int
	Snap     int
	MFact    float64

	Font string

	ColNormBorder, ColNormBG, ColNormFG uint32
	ColSelBorder, ColSelBG, ColSelFG    uint32
}

// ActionFunc is what a key or button binding invokes.
type ActionFunc func(wm *WM, arg uint32)

type KeyBinding struct {
	Mods   uint16
	Keysym uint32
	Action ActionFunc
	Arg    uint32
}

type ButtonBinding struct {
	Region ClickRegion
	Mods   uint16
	Button byte
	Action ActionFunc
	Arg    uint32
}

const (
	modKey  = modSuper // the single "WM modifier" most bindings are under
	modSuper uint16 = 1 << 6 // Mod4, i.e. the Super/Windows key
)

// DefaultConfig reproduces dwm.c's default config.h binding set in Go
// struct literals: tag switch, focus-stack, zoom, layout cycle, mfact
// adjust, kill, quit, spawn-terminal.
func DefaultConfig() *Config {
	tile := &LayoutEntry{Symbol: "[]=", Layout: tileLayout{}}
	mirror := &LayoutEntry{Symbol: "TTT", Layout: mirrorTileLayout{}}
	monocle := &LayoutEntry{Symbol: "[M]", Layout: monocleLayout{}}
	float := &LayoutEntry{Symbol: "><>", Layout: floatingLayout{}}

	cfg := &Config{
		Tags: [numViews]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Layouts: []*LayoutEntry{tile, mirror, monocle, float},

		ShowBar:     true,
		TopBar:      true,
		ResizeHints: true,

		BorderPX: 1,
		Snap:     32,
		MFact:    0.55,

		Font: "monospace:size=10",

		ColNormBorder: 0x444444, ColNormBG: 0x222222, ColNormFG: 0xbbbbbb,
		ColSelBorder: 0x005577, ColSelBG: 0x005577, ColSelFG: 0xeeeeee,
	}

	for i := 0; i < numViews; i++ {
		cfg.Keys = append(cfg.Keys, KeyBinding{Mods: modKey, Keysym: keysym1 + uint32(i), Action: actionView, Arg: 1 << uint(i)})
		cfg.Keys = append(cfg.Keys, KeyBinding{Mods: modKey | modShift, Keysym: keysym1 + uint32(i), Action: actionTag, Arg: 1 << uint(i)})
	}
	cfg.Keys = append(cfg.Keys,
		KeyBinding{Mods: modKey, Keysym: keysymJ, Action: actionFocusStack, Arg: 1},
		KeyBinding{Mods: modKey, Keysym: keysymK, Action: actionFocusStack, Arg: ^uint32(0)},
		KeyBinding{Mods: modKey, Keysym: keysymReturn, Action: actionZoom},
		KeyBinding{Mods: modKey, Keysym: keysymSpace, Action: actionCycleLayout},
		KeyBinding{Mods: modKey, Keysym: keysymH, Action: actionSetMFact, Arg: mfactArg(-0.05)},
		KeyBinding{Mods: modKey, Keysym: keysymL, Action: actionSetMFact, Arg: mfactArg(0.05)},
		KeyBinding{Mods: modKey, Keysym: keysymT, Action: actionToggleFloating},
		KeyBinding{Mods: modKey, Keysym: keysymB, Action: actionToggleBar},
		KeyBinding{Mods: modKey | modShift, Keysym: keysymC, Action: actionKillClient},
		KeyBinding{Mods: modKey | modShift, Keysym: keysymQ, Action: actionQuit},
		KeyBinding{Mods: modKey, Keysym: keysymPeriod, Action: actionFocusMon, Arg: 1},
		KeyBinding{Mods: modKey, Keysym: keysymComma, Action: actionFocusMon, Arg: ^uint32(0)},
		KeyBinding{Mods: modKey | modShift, Keysym: keysymReturn, Action: actionSpawn},
	)

	for i := 0; i < numViews; i++ {
		cfg.Buttons = append(cfg.Buttons, ButtonBinding{Region: ClickTagBar, Button: 1, Action: actionView, Arg: 0})
		cfg.Buttons = append(cfg.Buttons, ButtonBinding{Region: ClickTagBar, Mods: modShift, Button: 1, Action: actionTag, Arg: 0})
	}
	cfg.Buttons = append(cfg.Buttons,
		ButtonBinding{Region: ClickClientWin, Mods: modKey, Button: 1, Action: actionMoveMouse},
		ButtonBinding{Region: ClickClientWin, Mods: modKey, Button: 3, Action: actionResizeMouse},
		ButtonBinding{Region: ClickLayoutSymbol, Button: 1, Action: actionCycleLayout},
	)

	return cfg
}

// bindingKeysyms returns the deduplicated set of keysyms this config
// binds. The order of the result is not defined.
func bindingKeysyms(cfg *Config) []uint32 {
	set := map[uint32]bool{}
	for _, k := range cfg.Keys {
		set[k.Keysym] = true
	}
	return maps.Keys(set)
}

const modShift uint16 = 1 // xproto.ModMaskShift mirrored here to avoid an import cycle in literals

func mfactArg(delta float64) uint32 {
	// mfact deltas are encoded as a fixed-point uint32 (delta*1000 + bias)
	// so ActionFunc's single-arg signature can carry a signed float.
	return uint32(int32(delta*1000) + 1<<30)
}

func decodeMFactArg(arg uint32) float64 {
	return float64(int32(arg)-1<<30) / 1000
}

// Placeholder keysym constants (X11 keysym values for the default
// bindings). These mirror <X11/keysymdef.h>; keybind.KeysymGet at runtime
// is the source of truth, these are just the compile-time config literals.
const (
	keysym1        = 0x0031
	keysymJ        = 0x006a
	keysymK        = 0x006b
	keysymH        = 0x0068
	keysymL        = 0x006c
	keysymT        = 0x0074
	keysymB        = 0x0062
	keysymC        = 0x0063
	keysymQ        = 0x0071
	keysymReturn   = 0xff0d
	keysymSpace    = 0x0020
	keysymPeriod   = 0x002e
	keysymComma    = 0x002c
)
