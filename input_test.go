package main

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

// testable property 9: cleanMask(m) == cleanMask(m | NumLockMask | LockMask).
func TestCleanMaskIgnoresLockKeys(t *testing.T) {
	numLockMask = xproto.ModMask2
	defer func() { numLockMask = 0 }()

	masks := []uint16{0, xproto.ModMaskShift, xproto.ModMaskControl,
		xproto.ModMaskShift | xproto.ModMaskControl}

	for _, m := range masks {
		plain := cleanMask(m)
		withLocks := cleanMask(m | numLockMask | xproto.ModMaskLock)
		if plain != withLocks {
			t.Fatalf("cleanMask(%#x)=%#x != cleanMask with locks=%#x", m, plain, withLocks)
		}
	}
}

func TestLockCombosCoversAllFourCombinations(t *testing.T) {
	numLockMask = xproto.ModMask2
	defer func() { numLockMask = 0 }()

	combos := lockCombos()
	if len(combos) != 4 {
		t.Fatalf("expected 4 combinations, got %d", len(combos))
	}
	seen := map[uint16]bool{}
	for _, c := range combos {
		seen[c] = true
	}
	want := []uint16{0, xproto.ModMaskLock, numLockMask, numLockMask | xproto.ModMaskLock}
	for _, w := range want {
		if !seen[w] {
			t.Fatalf("missing combination %#x", w)
		}
	}
}
