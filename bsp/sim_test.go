package bsp

import (
	"errors"
	"image/color"
	"testing"
)

func pix565(p *SimPanel, x, y int) uint16 {
	off := y*p.stride + x*2
	return uint16(p.buf[off]) | uint16(p.buf[off+1])<<8
}

func TestSimPanel_SetPixel565(t *testing.T) {
	p := newSimPanel(DisplayConfig{Width: 4, Height: 4, PixelFormat: PixelFormatRGB565})
	p.SetPixel(1, 2, color.RGBA{R: 255, A: 255})
	if got := pix565(p, 1, 2); got != 0xF800 {
		t.Fatalf("pixel = %#04x; want 0xF800", got)
	}
	// Out-of-range writes are dropped.
	p.SetPixel(-1, 0, color.RGBA{R: 255, A: 255})
	p.SetPixel(4, 4, color.RGBA{R: 255, A: 255})
	if got := pix565(p, 0, 0); got != 0 {
		t.Fatalf("corner = %#04x; want untouched", got)
	}
}

func TestSimPanel_SetPixel888(t *testing.T) {
	p := newSimPanel(DisplayConfig{Width: 2, Height: 2, PixelFormat: PixelFormatRGB888})
	p.SetPixel(1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	off := 1*p.stride + 1*3
	if p.buf[off] != 1 || p.buf[off+1] != 2 || p.buf[off+2] != 3 {
		t.Fatalf("pixel bytes = %v; want 1 2 3", p.buf[off:off+3])
	}
}

func TestSimPanel_FillRectangleClamps(t *testing.T) {
	p := newSimPanel(DisplayConfig{Width: 4, Height: 4, PixelFormat: PixelFormatRGB565})
	if err := p.FillRectangle(2, 2, 10, 10, color.RGBA{B: 255, A: 255}); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if got := pix565(p, 3, 3); got != 0x001F {
		t.Fatalf("inside = %#04x; want 0x001F", got)
	}
	if got := pix565(p, 1, 1); got != 0 {
		t.Fatalf("outside = %#04x; want untouched", got)
	}
}

func TestSimPanel_ScrollUp(t *testing.T) {
	p := newSimPanel(DisplayConfig{Width: 2, Height: 3, PixelFormat: PixelFormatRGB565})
	rows := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			p.SetPixel(int16(x), int16(y), c)
		}
	}
	if err := p.ScrollUp(1, color.RGBA{A: 255}); err != nil {
		t.Fatalf("ScrollUp: %v", err)
	}
	if got := pix565(p, 0, 0); got != 0x07E0 {
		t.Fatalf("row 0 = %#04x; want green 0x07E0", got)
	}
	if got := pix565(p, 0, 1); got != 0x001F {
		t.Fatalf("row 1 = %#04x; want blue 0x001F", got)
	}
	if got := pix565(p, 0, 2); got != 0 {
		t.Fatalf("row 2 = %#04x; want cleared", got)
	}

	// Scrolling the full height clears everything.
	if err := p.ScrollUp(3, color.RGBA{A: 255}); err != nil {
		t.Fatalf("ScrollUp: %v", err)
	}
	if got := pix565(p, 0, 0); got != 0 {
		t.Fatalf("row 0 = %#04x; want cleared", got)
	}
}

func TestSimPanel_SnapshotAndFlushes(t *testing.T) {
	p := newSimPanel(DisplayConfig{Width: 2, Height: 1, PixelFormat: PixelFormatRGB565})
	p.SetPixel(0, 0, color.RGBA{R: 255, A: 255})
	dst := make([]byte, 4)
	p.snapshot(dst)
	if dst[0] != 0x00 || dst[1] != 0xF8 {
		t.Fatalf("snapshot = %v; want little-endian 0xF800 first", dst)
	}

	if p.Flushes() != 0 {
		t.Fatalf("Flushes = %d; want 0", p.Flushes())
	}
	if err := p.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if p.Flushes() != 1 {
		t.Fatalf("Flushes = %d; want 1", p.Flushes())
	}
}

func TestSimPanel_DisplayOn(t *testing.T) {
	p := newSimPanel(DisplayConfig{Width: 1, Height: 1, PixelFormat: PixelFormatRGB565})
	if !p.DisplayOn() {
		t.Fatal("expected panel on after construction")
	}
	if err := p.SetDisplayOn(false); err != nil {
		t.Fatalf("SetDisplayOn: %v", err)
	}
	if p.DisplayOn() {
		t.Fatal("expected panel off")
	}
}

func TestSimSupport_TouchClamped(t *testing.T) {
	sp := NewSimSupport(SimConfig{})
	tp, err := sp.TouchNew(TouchParams{Width: 100, Height: 50})
	if err != nil {
		t.Fatalf("TouchNew: %v", err)
	}
	sp.SetTouchState(500, -3, true)
	pt := tp.ReadTouchPoint()
	if pt.Z <= 0 || pt.X != 100 || pt.Y != 0 {
		t.Fatalf("point = %+v; want clamped to 100,0", pt)
	}
	sp.SetTouchState(10, 10, false)
	if pt := tp.ReadTouchPoint(); pt.Z != 0 {
		t.Fatalf("point = %+v; want released", pt)
	}
}

func TestSimSupport_FailureFlags(t *testing.T) {
	sp := NewSimSupport(SimConfig{FailDisplayNew: true, FailTouchNew: true, FailBacklightOn: true})
	if _, err := sp.DisplayNew(DisplayConfig{Width: 1, Height: 1, PixelFormat: PixelFormatRGB565}); !errors.Is(err, errSimDisplay) {
		t.Fatalf("DisplayNew = %v; want errSimDisplay", err)
	}
	if _, err := sp.TouchNew(TouchParams{}); !errors.Is(err, errSimTouch) {
		t.Fatalf("TouchNew = %v; want errSimTouch", err)
	}
	if err := sp.BacklightOn(); !errors.Is(err, errSimBacklight) {
		t.Fatalf("BacklightOn = %v; want errSimBacklight", err)
	}
	if err := sp.BacklightOff(); err != nil {
		t.Fatalf("BacklightOff: %v", err)
	}
}
