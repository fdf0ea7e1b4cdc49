package bsp

import (
	"errors"
	"testing"
)

// initializedScreen wires a Screen to a Core S3 board directly, since
// test builds carry no board tag.
func initializedScreen(t *testing.T) (*Screen, *SimSupport) {
	t.Helper()
	sp := NewSimSupport(SimConfig{})
	s := NewWithSupport(sp, Discard)
	if _, err := s.initBoard(NewM5StackCoreS3(sp, Discard)); err != nil {
		t.Fatalf("initBoard: %v", err)
	}
	return s, sp
}

func TestScreenInit_NoBoardTag(t *testing.T) {
	s := NewWithSupport(NewSimSupport(SimConfig{}), Discard)
	if _, err := s.Init(); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("Init without a board tag = %v; want ErrNotSupported", err)
	}
	if got := s.Name(); got != "" {
		t.Fatalf("Name = %q; want empty for untagged build", got)
	}
}

func TestScreenOps_BeforeInit(t *testing.T) {
	s := NewWithSupport(NewSimSupport(SimConfig{}), Discard)

	if err := s.BacklightOn(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("BacklightOn = %v; want ErrInvalidState", err)
	}
	if err := s.BacklightOff(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("BacklightOff = %v; want ErrInvalidState", err)
	}
	if err := s.SetDisplayOn(false); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("SetDisplayOn = %v; want ErrInvalidState", err)
	}
	if err := s.TouchInit(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("TouchInit = %v; want ErrInvalidState", err)
	}

	ts := TouchSample{Pressed: true, X: 9, Y: 9}
	if err := s.TouchRead(&ts); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("TouchRead = %v; want ErrInvalidState", err)
	}
	if ts != (TouchSample{}) {
		t.Fatalf("TouchRead left sample %+v; want zeroed", ts)
	}
}

func TestScreenTouchRead_NilSample(t *testing.T) {
	s, _ := initializedScreen(t)
	defer s.Close()

	if err := s.TouchRead(nil); !errors.Is(err, ErrInvalidArg) {
		t.Fatalf("TouchRead(nil) = %v; want ErrInvalidArg", err)
	}
}

func TestScreenLifecycle(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	s := NewWithSupport(sp, Discard)
	cfg, err := s.initBoard(NewM5StackCoreS3(sp, Discard))
	if err != nil {
		t.Fatalf("initBoard: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Fatalf("config = %dx%d; want 320x240", cfg.Width, cfg.Height)
	}
	if s.Config() != cfg {
		t.Fatalf("Config = %+v; want %+v", s.Config(), cfg)
	}
	if s.Panel() == nil || s.IO() == nil {
		t.Fatal("expected panel and io handles after init")
	}
	if got, want := s.Name(), "M5Stack Core S3"; got != want {
		t.Fatalf("Name = %q; want %q", got, want)
	}

	if _, err := s.initBoard(NewM5StackCoreS3(sp, Discard)); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second init = %v; want ErrInvalidState", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if s.Panel() != nil || s.Config() != (DisplayConfig{}) {
		t.Fatal("expected handles and config cleared after Close")
	}
	if err := s.BacklightOn(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("BacklightOn after Close = %v; want ErrInvalidState", err)
	}

	// A closed screen accepts a fresh bring-up.
	if _, err := s.initBoard(NewM5StackCoreS3(sp, Discard)); err != nil {
		t.Fatalf("initBoard after Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestScreenForwarding(t *testing.T) {
	s, sp := initializedScreen(t)
	defer s.Close()

	if !sp.BacklightLit() {
		t.Fatal("expected backlight lit after init")
	}
	if err := s.BacklightOff(); err != nil {
		t.Fatalf("BacklightOff: %v", err)
	}
	if sp.BacklightLit() {
		t.Fatal("expected backlight off after BacklightOff")
	}
	if err := s.BacklightOn(); err != nil {
		t.Fatalf("BacklightOn: %v", err)
	}
	if !sp.BacklightLit() {
		t.Fatal("expected backlight lit after BacklightOn")
	}

	if err := s.SetDisplayOn(false); err != nil {
		t.Fatalf("SetDisplayOn(false): %v", err)
	}
	if sp.Panel().DisplayOn() {
		t.Fatal("expected panel off after SetDisplayOn(false)")
	}

	if err := s.TouchInit(); err != nil {
		t.Fatalf("TouchInit: %v", err)
	}
	sp.SetTouchState(13, 37, true)
	var ts TouchSample
	if err := s.TouchRead(&ts); err != nil {
		t.Fatalf("TouchRead: %v", err)
	}
	if !ts.Pressed || ts.X != 13 || ts.Y != 37 {
		t.Fatalf("sample = %+v; want pressed at 13,37", ts)
	}
}
