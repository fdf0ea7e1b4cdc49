//go:build cgo

package bsp

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"espsdl/internal/buildinfo"
)

// Window size used until the board's bring-up reports a real geometry.
const (
	defaultWindowWidth  = 320
	defaultWindowHeight = 240
)

// presentablePanel is what the window runner needs from a panel: raw
// geometry plus a buffer snapshot. The simulated panel provides it.
type presentablePanel interface {
	Width() int
	Height() int
	Format() PixelFormat
	DisplayOn() bool
	snapshot(dst []byte)
}

// RunWindow starts a desktop window that presents the selected board's
// panel and feeds the cursor back in as touch input. B toggles the
// backlight, D toggles panel output. It blocks until the window closes.
func RunWindow(newApp func(s *Screen) func() error) error {
	s := New()
	step := newApp(s)
	defer s.Close()

	g := &hostGame{scr: s, step: step, backlight: true, display: true}
	ebiten.SetWindowTitle("espsdl (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(defaultWindowWidth*2, defaultWindowHeight*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	scr     *Screen
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error

	backlight bool
	display   bool
}

func (g *hostGame) Update() error {
	g.pollInput()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) pollInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.backlight = !g.backlight
		var err error
		if g.backlight {
			err = g.scr.BacklightOn()
		} else {
			err = g.scr.BacklightOff()
		}
		if err != nil {
			g.scr.log.WriteLineString("window: backlight toggle: " + err.Error())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.display = !g.display
		if err := g.scr.SetDisplayOn(g.display); err != nil {
			g.scr.log.WriteLineString("window: display toggle: " + err.Error())
		}
	}
	g.feedTouch()
}

// feedTouch forwards the cursor to the simulated touch sensor, routed
// through the board's sensor mapping when it has one.
func (g *hostGame) feedTouch() {
	feeder, ok := g.scr.sp.(interface{ SetTouchState(x, y int, pressed bool) })
	if !ok {
		return
	}
	cfg := g.scr.Config()
	if !cfg.HasTouch {
		return
	}
	x, y := ebiten.CursorPosition()
	x = clampInt(x, 0, cfg.Width)
	y = clampInt(y, 0, cfg.Height)
	if m, ok := g.scr.board.(sensorMapper); ok {
		x, y = m.mapToSensor(x, y)
	}
	feeder.SetTouchState(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p, ok := g.scr.Panel().(presentablePanel)
	if !ok {
		return
	}
	w, h := p.Width(), p.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, w*h*p.Format().BytesPerPixel())
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		ebiten.SetWindowSize(w*2, h*2)
	}
	if !p.DisplayOn() {
		return
	}

	p.snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	switch p.Format() {
	case PixelFormatRGB888:
		for i := 0; i+2 < len(src) && i/3*4+3 < len(dst); i += 3 {
			j := (i / 3) * 4
			dst[j+0] = src[i]
			dst[j+1] = src[i+1]
			dst[j+2] = src[i+2]
			dst[j+3] = 0xFF
		}
	default:
		for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
			r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
			j := (i / 2) * 4
			dst[j+0] = r
			dst[j+1] = gg
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	op := &ebiten.DrawImageOptions{}
	if bs, ok := g.scr.sp.(interface{ BacklightLit() bool }); ok && !bs.BacklightLit() {
		op.ColorScale.Scale(0.15, 0.15, 0.15, 1)
	}
	screen.DrawImage(g.fbImg, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if p, ok := g.scr.Panel().(presentablePanel); ok {
		return p.Width(), p.Height()
	}
	return defaultWindowWidth, defaultWindowHeight
}
