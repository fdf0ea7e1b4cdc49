package bsp

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// SimPanel is an in-memory panel keeping pixels in the configured native
// format, little-endian rows like the hardware framebuffers it stands in
// for. The window runner snapshots it on its own clock.
type SimPanel struct {
	mu     sync.Mutex
	width  int
	height int
	format PixelFormat
	stride int
	buf    []byte

	displayOn bool
	flushes   uint64
}

func newSimPanel(cfg DisplayConfig) *SimPanel {
	stride := cfg.Width * cfg.PixelFormat.BytesPerPixel()
	return &SimPanel{
		width:  cfg.Width,
		height: cfg.Height,
		format: cfg.PixelFormat,
		stride: stride,
		buf:    make([]byte, stride*cfg.Height),
		// Panels stream once constructed; the on/off primitive only
		// gates output afterwards.
		displayOn: true,
	}
}

func (p *SimPanel) Size() (x, y int16) {
	return int16(p.width), int16(p.height)
}

func (p *SimPanel) SetPixel(x, y int16, c color.RGBA) {
	p.mu.Lock()
	p.setPixelLocked(int(x), int(y), c)
	p.mu.Unlock()
}

func (p *SimPanel) setPixelLocked(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	switch p.format {
	case PixelFormatRGB565:
		off := y*p.stride + x*2
		v := rgb565(c.R, c.G, c.B)
		p.buf[off] = byte(v)
		p.buf[off+1] = byte(v >> 8)
	case PixelFormatRGB888:
		off := y*p.stride + x*3
		p.buf[off] = c.R
		p.buf[off+1] = c.G
		p.buf[off+2] = c.B
	}
}

// Display presents the buffer. The snapshot path does the real work, so
// presenting only counts frames.
func (p *SimPanel) Display() error {
	p.mu.Lock()
	p.flushes++
	p.mu.Unlock()
	return nil
}

func (p *SimPanel) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	x0 := clampInt(int(x), 0, p.width)
	y0 := clampInt(int(y), 0, p.height)
	x1 := clampInt(int(x)+int(width), 0, p.width)
	y1 := clampInt(int(y)+int(height), 0, p.height)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			p.setPixelLocked(xx, yy, c)
		}
	}
	return nil
}

// ScrollUp shifts the buffer up by pixels rows and clears the exposed
// bottom area. Terminal software scrolling uses it.
func (p *SimPanel) ScrollUp(pixels int16, bg color.RGBA) error {
	n := int(pixels)
	if n <= 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n > p.height {
		n = p.height
	}
	keep := (p.height - n) * p.stride
	copy(p.buf[:keep], p.buf[n*p.stride:])
	for yy := p.height - n; yy < p.height; yy++ {
		for xx := 0; xx < p.width; xx++ {
			p.setPixelLocked(xx, yy, bg)
		}
	}
	return nil
}

// SetScroll would move the hardware scroll line; the simulated panel has
// none.
func (p *SimPanel) SetScroll(line int16) {}

func (p *SimPanel) SetRotation(rotation drivers.Rotation) error {
	return nil
}

// SetDisplayOn tracks the panel on/off primitive. The window runner
// blanks its frame while the panel is off.
func (p *SimPanel) SetDisplayOn(on bool) error {
	p.mu.Lock()
	p.displayOn = on
	p.mu.Unlock()
	return nil
}

// DisplayOn reports the last SetDisplayOn state.
func (p *SimPanel) DisplayOn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.displayOn
}

func (p *SimPanel) Width() int  { return p.width }
func (p *SimPanel) Height() int { return p.height }

func (p *SimPanel) Format() PixelFormat { return p.format }

// Flushes reports how many times Display has run.
func (p *SimPanel) Flushes() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}

// snapshot copies the raw buffer into dst, which must hold
// Width*Height*BytesPerPixel bytes.
func (p *SimPanel) snapshot(dst []byte) {
	p.mu.Lock()
	copy(dst, p.buf)
	p.mu.Unlock()
}
