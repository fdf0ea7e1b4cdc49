package bsp

import (
	"errors"
	"testing"
)

func TestGenericInit_DisplayPath(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	b := NewESPGeneric(sp, Discard, GenericOptions{
		Display: true, Width: 480, Height: 272, Backlight: true, EnableTouch: true,
	})
	cfg, handles, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	want := DisplayConfig{
		Width:            480,
		Height:           272,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: 480 * 272 * 2,
		HasTouch:         true,
	}
	if cfg != want {
		t.Fatalf("config = %+v; want %+v", cfg, want)
	}
	if handles.Panel == nil {
		t.Fatal("expected panel handle")
	}
	if !sp.Panel().DisplayOn() || !sp.BacklightLit() {
		t.Fatal("expected panel switched on and backlight lit")
	}
}

func TestGenericInit_InvalidSize(t *testing.T) {
	b := NewESPGeneric(NewSimSupport(SimConfig{}), Discard, GenericOptions{Display: true, Width: 0, Height: 240})
	if _, _, err := b.Init(); !errors.Is(err, ErrInvalidArg) {
		t.Fatalf("Init = %v; want ErrInvalidArg", err)
	}
}

func TestGenericInit_VirtualPath(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	b := NewESPGeneric(sp, Discard, GenericOptions{})
	cfg, handles, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.Width != 240 || cfg.Height != 320 {
		t.Fatalf("config = %dx%d; want virtual 240x320", cfg.Width, cfg.Height)
	}
	if handles.Panel != nil {
		t.Fatal("expected nil panel on the virtual path")
	}
	if sp.Panel() != nil {
		t.Fatal("vendor display brought up despite Display off")
	}
	// Without a panel the toggle has nothing to act on.
	if err := b.SetDisplayOn(true); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("SetDisplayOn = %v; want ErrInvalidState", err)
	}
}

func TestGenericInit_NoBacklightConfigured(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	b := NewESPGeneric(sp, Discard, GenericOptions{Display: true, Width: 320, Height: 240})
	if _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if sp.BrightnessReady() || sp.BacklightLit() {
		t.Fatal("backlight touched despite Backlight off")
	}
}

func TestGenericInit_BrightnessFailureTolerated(t *testing.T) {
	sp := NewSimSupport(SimConfig{FailBrightnessInit: true})
	b := NewESPGeneric(sp, Discard, GenericOptions{Display: true, Width: 320, Height: 240, Backlight: true})
	if _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if sp.BacklightLit() {
		t.Fatal("backlight lit; want skipped after brightness failure")
	}
}

func TestGenericTouch_VirtualPath(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	b := NewESPGeneric(sp, Discard, GenericOptions{EnableTouch: true})
	cfg, _, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !cfg.HasTouch {
		t.Fatal("expected touch capability")
	}
	if err := b.TouchInit(); err != nil {
		t.Fatalf("TouchInit: %v", err)
	}
	sp.SetTouchState(120, 160, true)
	var ts TouchSample
	if err := b.TouchRead(&ts); err != nil {
		t.Fatalf("TouchRead: %v", err)
	}
	if !ts.Pressed || ts.X != 120 || ts.Y != 160 {
		t.Fatalf("sample = %+v; want pressed at 120,160", ts)
	}
}
