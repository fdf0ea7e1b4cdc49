// Package app is the demo application behind the board shim: it brings
// the selected board up, opens a terminal on its panel and echoes touch
// input back onto the screen.
package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"

	"espsdl/bsp"
	"espsdl/internal/buildinfo"
)

// statusEvery is the tick interval between uptime lines, five seconds
// at the 60 Hz runner clock.
const statusEvery = 300

var markColor = color.RGBA{R: 255, G: 96, B: 64, A: 255}

type demo struct {
	scr  *bsp.Screen
	term *tinyterm.Terminal
	cfg  bsp.DisplayConfig

	started bool
	failed  error
	dirty   bool

	pressed bool
	presses int
	tick    uint64
}

// New builds the demo loop over s. The board comes up on the first step
// so bring-up failures surface through the runner.
func New(s *bsp.Screen) func() error {
	d := &demo{scr: s}
	return d.step
}

func (d *demo) step() error {
	if d.failed != nil {
		return d.failed
	}
	if !d.started {
		if err := d.start(); err != nil {
			d.failed = err
			return err
		}
		d.started = true
	}
	d.tick++
	d.pollTouch()
	if d.tick%statusEvery == 0 && d.term != nil {
		fmt.Fprintf(d.term, "tick %d  presses %d\n", d.tick, d.presses)
		d.dirty = true
	}
	if d.dirty && d.term != nil {
		d.term.Display()
		d.dirty = false
	}
	return nil
}

func (d *demo) start() error {
	cfg, err := d.scr.Init()
	if err != nil {
		return err
	}
	d.cfg = cfg
	if cfg.HasTouch {
		if err := d.scr.TouchInit(); err != nil {
			return fmt.Errorf("touch init: %w", err)
		}
	}
	if p := d.scr.Panel(); p != nil {
		d.term = tinyterm.NewTerminal(p)
		d.term.Configure(&tinyterm.Config{
			Font:              &proggy.TinySZ8pt7b,
			FontHeight:        10,
			FontOffset:        6,
			UseSoftwareScroll: true,
		})
		d.banner()
		d.dirty = true
	}
	return nil
}

func (d *demo) banner() {
	fmt.Fprintf(d.term, "%s\n", d.scr.Name())
	fmt.Fprintf(d.term, "%dx%d %s, max transfer %d\n",
		d.cfg.Width, d.cfg.Height, d.cfg.PixelFormat, d.cfg.MaxTransferBytes)
	if d.cfg.HasTouch {
		fmt.Fprintf(d.term, "touch: ready\n")
	} else {
		fmt.Fprintf(d.term, "touch: none\n")
	}
	fmt.Fprintf(d.term, "build %s\n\n", buildinfo.Short())
}

func (d *demo) pollTouch() {
	if !d.cfg.HasTouch {
		return
	}
	var ts bsp.TouchSample
	if err := d.scr.TouchRead(&ts); err != nil {
		return
	}
	if ts.Pressed && !d.pressed {
		d.presses++
		if d.term != nil {
			fmt.Fprintf(d.term, "press %d at %d,%d\n", d.presses, ts.X, ts.Y)
		}
		d.mark(ts)
		d.dirty = true
	}
	if !ts.Pressed && d.pressed && d.term != nil {
		fmt.Fprintf(d.term, "release\n")
		d.dirty = true
	}
	d.pressed = ts.Pressed
}

// mark drops a small square with the panel coordinates next to it where
// the press landed.
func (d *demo) mark(ts bsp.TouchSample) {
	p := d.scr.Panel()
	if p == nil {
		return
	}
	_ = p.FillRectangle(int16(ts.X)-2, int16(ts.Y)-2, 5, 5, markColor)
	tinyfont.WriteLine(p, &proggy.TinySZ8pt7b, int16(ts.X)+6, int16(ts.Y),
		fmt.Sprintf("%d,%d", ts.X, ts.Y), markColor)
}
