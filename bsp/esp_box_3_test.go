package bsp

import (
	"errors"
	"testing"
)

func TestBox3Init_DisplayOnly(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	b := NewESPBox3(sp, Discard)

	cfg, handles, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 || !cfg.HasTouch {
		t.Fatalf("config = %+v; want 320x240 with touch", cfg)
	}
	if handles.Panel == nil {
		t.Fatal("expected panel handle")
	}
	// The Box-3 bring-up is a single display step; brightness and
	// backlight stay with the vendor package until asked for.
	if sp.BrightnessReady() {
		t.Fatal("brightness initialized; want untouched")
	}
	if sp.BacklightLit() {
		t.Fatal("backlight lit; want untouched")
	}

	if err := b.BacklightOn(); err != nil {
		t.Fatalf("BacklightOn: %v", err)
	}
	if !sp.BacklightLit() {
		t.Fatal("expected backlight lit after BacklightOn")
	}
}

func TestBox3TouchLifecycle(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	b := NewESPBox3(sp, Discard)
	if _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var ts TouchSample
	if err := b.TouchRead(&ts); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("TouchRead before TouchInit = %v; want ErrInvalidState", err)
	}
	if err := b.TouchInit(); err != nil {
		t.Fatalf("TouchInit: %v", err)
	}
	sp.SetTouchState(11, 22, true)
	if err := b.TouchRead(&ts); err != nil {
		t.Fatalf("TouchRead: %v", err)
	}
	if !ts.Pressed || ts.X != 11 || ts.Y != 22 {
		t.Fatalf("sample = %+v; want pressed at 11,22", ts)
	}

	// Deinit must drop the touch handle along with the display.
	if err := b.Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
	if err := b.TouchRead(&ts); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("TouchRead after Deinit = %v; want ErrInvalidState", err)
	}
}
