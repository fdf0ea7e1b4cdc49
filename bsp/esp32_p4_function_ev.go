package bsp

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

const p4Name = "ESP32-P4 Function EV Board"

// P4Options selects the panel variant and optional peripherals of the
// Function EV board. The zero value is the 1280x800 RGB565 variant with
// touch disabled.
type P4Options struct {
	// Res1024x600 selects the smaller 1024x600 panel.
	Res1024x600 bool
	// RGB888 switches the DPI interface to 24-bit color.
	RGB888      bool
	EnableTouch bool
}

// ESP32P4FunctionEV drives the ESP32-P4 Function EV board's MIPI-DSI
// panel in one of its configurable geometries.
type ESP32P4FunctionEV struct {
	sp      SupportPackage
	log     Logger
	opts    P4Options
	guard   handleGuard
	cfg     DisplayConfig
	handles Handles
	touch   touch.Pointer
}

// NewESP32P4FunctionEV returns the Function EV adapter over sp. A nil
// log falls back to stderr.
func NewESP32P4FunctionEV(sp SupportPackage, log Logger, opts P4Options) *ESP32P4FunctionEV {
	return &ESP32P4FunctionEV{sp: sp, log: ensureLogger(log), opts: opts}
}

func (b *ESP32P4FunctionEV) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("p4 function ev: no support package: %w", ErrInvalidArg)
	}
	width, height := 1280, 800
	if b.opts.Res1024x600 {
		width, height = 1024, 600
	}
	format := PixelFormatRGB565
	if b.opts.RGB888 {
		format = PixelFormatRGB888
	}
	cfg := DisplayConfig{
		Width:            width,
		Height:           height,
		PixelFormat:      format,
		MaxTransferBytes: width * height * format.BytesPerPixel(),
		HasTouch:         b.opts.EnableTouch,
	}
	steps := []bringUpStep{
		{name: "display new", run: func() error { return b.displayNew(cfg) }},
		{name: "backlight", optional: true, run: func() error {
			if err := b.sp.BrightnessInit(); err != nil {
				return err
			}
			return b.sp.BacklightOn()
		}},
	}
	if err := runBringUp(b.log, "p4 function ev", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("p4 function ev: initialized: %dx%d %s", cfg.Width, cfg.Height, cfg.PixelFormat))
	return cfg, b.handles, nil
}

func (b *ESP32P4FunctionEV) displayNew(cfg DisplayConfig) error {
	h, err := b.sp.DisplayNew(cfg)
	if err != nil {
		return err
	}
	b.handles = h
	b.guard.add(func() { b.handles = Handles{} })
	return nil
}

func (b *ESP32P4FunctionEV) BacklightOn() error {
	err := b.sp.BacklightOn()
	if err != nil {
		b.log.WriteLineString("p4 function ev: backlight on failed: " + err.Error())
	}
	return err
}

func (b *ESP32P4FunctionEV) BacklightOff() error {
	err := b.sp.BacklightOff()
	if err != nil {
		b.log.WriteLineString("p4 function ev: backlight off failed: " + err.Error())
	}
	return err
}

// SetDisplayOn always succeeds: the DPI panel streams continuously and
// has no output switch.
func (b *ESP32P4FunctionEV) SetDisplayOn(on bool) error { return nil }

func (b *ESP32P4FunctionEV) TouchInit() error {
	if !b.opts.EnableTouch {
		return ErrNotSupported
	}
	if b.touch != nil {
		return nil
	}
	tp, err := b.sp.TouchNew(TouchParams{Width: b.cfg.Width, Height: b.cfg.Height})
	if err != nil {
		return fmt.Errorf("p4 function ev: touch init: %w", err)
	}
	b.touch = tp
	b.guard.add(func() { b.touch = nil })
	return nil
}

func (b *ESP32P4FunctionEV) TouchRead(out *TouchSample) error {
	if out == nil {
		return ErrInvalidArg
	}
	*out = TouchSample{}
	if !b.opts.EnableTouch {
		return ErrNotSupported
	}
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

func (b *ESP32P4FunctionEV) Name() string { return p4Name }

func (b *ESP32P4FunctionEV) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("p4 function ev: deinitialized")
	return nil
}
