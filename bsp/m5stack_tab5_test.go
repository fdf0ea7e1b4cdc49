package bsp

import (
	"errors"
	"testing"
)

func newTab5ForTest(t *testing.T, sim SimConfig, opts Tab5Options) (*M5StackTab5, *SimSupport) {
	t.Helper()
	sp := NewSimSupport(sim)
	b := NewM5StackTab5(sp, Discard, opts)
	if _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return b, sp
}

func TestTab5Init(t *testing.T) {
	b, sp := newTab5ForTest(t, SimConfig{}, Tab5Options{EnableTouch: true})
	defer b.Deinit()

	cfg := b.cfg
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.PixelFormat != PixelFormatRGB565 {
		t.Fatalf("config = %+v; want 1280x720 RGB565", cfg)
	}
	if !cfg.HasTouch {
		t.Fatal("expected touch capability with EnableTouch")
	}
	if !sp.BacklightLit() {
		t.Fatal("expected backlight on after init")
	}
}

func TestTab5Init_BacklightIsBestEffort(t *testing.T) {
	// A broken brightness channel must not sink the whole bring-up.
	b, sp := newTab5ForTest(t, SimConfig{FailBrightnessInit: true}, Tab5Options{})
	defer b.Deinit()

	if sp.BacklightLit() {
		t.Fatal("backlight lit; want skipped after brightness failure")
	}
	if sp.Panel() == nil {
		t.Fatal("expected panel despite backlight failure")
	}
}

func TestTab5BacklightForwardsFailure(t *testing.T) {
	b, _ := newTab5ForTest(t, SimConfig{FailBacklightOn: true}, Tab5Options{})
	defer b.Deinit()

	if err := b.BacklightOn(); err == nil {
		t.Fatal("BacklightOn succeeded; want vendor failure forwarded")
	}
	if err := b.BacklightOff(); err != nil {
		t.Fatalf("BacklightOff: %v", err)
	}
}

func TestTab5DisplayToggle_LenientWithoutPanel(t *testing.T) {
	b := NewM5StackTab5(NewSimSupport(SimConfig{}), Discard, Tab5Options{})
	if err := b.SetDisplayOn(false); err != nil {
		t.Fatalf("SetDisplayOn without panel = %v; want nil", err)
	}
}

func TestTab5TouchRemap(t *testing.T) {
	b, sp := newTab5ForTest(t, SimConfig{}, Tab5Options{EnableTouch: true})
	defer b.Deinit()
	if err := b.TouchInit(); err != nil {
		t.Fatalf("TouchInit: %v", err)
	}

	tcs := []struct {
		name   string
		sx, sy int
		x, y   int
	}{
		{name: "origin", sx: 0, sy: 0, x: 0, y: 720},
		{name: "far corner", sx: 1280, sy: 720, x: 1280, y: 0},
		{name: "center", sx: 640, sy: 360, x: 640, y: 360},
	}
	for _, tc := range tcs {
		sp.SetTouchState(tc.sx, tc.sy, true)
		var ts TouchSample
		if err := b.TouchRead(&ts); err != nil {
			t.Fatalf("%s: TouchRead: %v", tc.name, err)
		}
		if !ts.Pressed || ts.X != tc.x || ts.Y != tc.y {
			t.Fatalf("%s: sample = %+v; want pressed at %d,%d", tc.name, ts, tc.x, tc.y)
		}

		// The window runner's inverse must land back on the sensor point.
		gx, gy := b.mapToSensor(ts.X, ts.Y)
		if gx != tc.sx || gy != tc.sy {
			t.Fatalf("%s: mapToSensor(%d,%d) = %d,%d; want %d,%d", tc.name, ts.X, ts.Y, gx, gy, tc.sx, tc.sy)
		}
	}
}

func TestTab5Touch_Disabled(t *testing.T) {
	b, _ := newTab5ForTest(t, SimConfig{}, Tab5Options{})
	defer b.Deinit()

	if err := b.TouchInit(); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("TouchInit = %v; want ErrNotSupported", err)
	}
	ts := TouchSample{Pressed: true, X: 1, Y: 1}
	if err := b.TouchRead(&ts); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("TouchRead = %v; want ErrNotSupported", err)
	}
	if ts != (TouchSample{}) {
		t.Fatalf("sample = %+v; want zeroed", ts)
	}
}
