package bsp

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

const (
	box3Name   = "ESP-Box-3"
	box3Width  = 320
	box3Height = 240
)

// ESPBox3 drives the ESP-Box-3, a 320x240 RGB565 panel with a capacitive
// touch overlay. The vendor package switches the panel on during
// bring-up, so no separate display-on step runs.
type ESPBox3 struct {
	sp      SupportPackage
	log     Logger
	guard   handleGuard
	cfg     DisplayConfig
	handles Handles
	touch   touch.Pointer
}

// NewESPBox3 returns the Box-3 adapter over sp. A nil log falls back to
// stderr.
func NewESPBox3(sp SupportPackage, log Logger) *ESPBox3 {
	return &ESPBox3{sp: sp, log: ensureLogger(log)}
}

func (b *ESPBox3) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("box 3: no support package: %w", ErrInvalidArg)
	}
	cfg := DisplayConfig{
		Width:            box3Width,
		Height:           box3Height,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: box3Width * box3Height * 2,
		HasTouch:         true,
	}
	steps := []bringUpStep{
		{name: "display new", run: func() error { return b.displayNew(cfg) }},
	}
	if err := runBringUp(b.log, "box 3", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("box 3: initialized: %dx%d", cfg.Width, cfg.Height))
	return cfg, b.handles, nil
}

func (b *ESPBox3) displayNew(cfg DisplayConfig) error {
	h, err := b.sp.DisplayNew(cfg)
	if err != nil {
		return err
	}
	b.handles = h
	b.guard.add(func() { b.handles = Handles{} })
	return nil
}

func (b *ESPBox3) BacklightOn() error  { return b.sp.BacklightOn() }
func (b *ESPBox3) BacklightOff() error { return b.sp.BacklightOff() }

func (b *ESPBox3) SetDisplayOn(on bool) error {
	if b.handles.Panel == nil {
		return ErrInvalidState
	}
	return b.handles.Panel.SetDisplayOn(on)
}

func (b *ESPBox3) TouchInit() error {
	if b.touch != nil {
		return nil
	}
	tp, err := b.sp.TouchNew(TouchParams{Width: box3Width, Height: box3Height})
	if err != nil {
		return fmt.Errorf("box 3: touch init: %w", err)
	}
	b.touch = tp
	b.guard.add(func() { b.touch = nil })
	return nil
}

func (b *ESPBox3) TouchRead(out *TouchSample) error {
	if out == nil {
		return ErrInvalidArg
	}
	*out = TouchSample{}
	if b.touch == nil {
		return ErrInvalidState
	}
	if pt := b.touch.ReadTouchPoint(); pt.Z > 0 {
		out.Pressed = true
		out.X = pt.X
		out.Y = pt.Y
	}
	return nil
}

func (b *ESPBox3) Name() string { return box3Name }

func (b *ESPBox3) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("box 3: deinitialized")
	return nil
}
