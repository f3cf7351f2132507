package terminal

import (
	"errors"
	"testing"
)

func withSize(t *testing.T, w, h int, err error) {
	t.Helper()
	old := getSize
	getSize = func() (int, int, error) { return w, h, err }
	t.Cleanup(func() { getSize = old })
}

func TestMapSize_NotATerminal(t *testing.T) {
	withSize(t, 0, 0, errors.New("not a terminal"))
	w, h := MapSize()
	if w != DefaultMapWidth || h != DefaultMapHeight {
		t.Errorf("expected %dx%d, got %dx%d", DefaultMapWidth, DefaultMapHeight, w, h)
	}
	if gw, gh := GetSize(); gw != DefaultWidth || gh != DefaultHeight {
		t.Errorf("expected terminal defaults, got %dx%d", gw, gh)
	}
}

func TestMapSize_ReservesTextBox(t *testing.T) {
	withSize(t, 120, 45, nil)
	w, h := MapSize()
	if w != 120 || h != 35 {
		t.Errorf("expected 120x35, got %dx%d", w, h)
	}
}

func TestMapSize_TinyTerminal(t *testing.T) {
	withSize(t, 10, 12, nil)
	w, h := MapSize()
	if w != minMapSide || h != minMapSide {
		t.Errorf("expected %dx%d, got %dx%d", minMapSide, minMapSide, w, h)
	}
}
