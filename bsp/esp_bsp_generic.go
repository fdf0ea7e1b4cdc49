package bsp

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

const (
	genericName = "ESP BSP Generic (Configurable)"
	// Geometry reported when no display is configured.
	genericVirtualWidth  = 240
	genericVirtualHeight = 320
)

// GenericOptions mirrors the build-time configuration of the generic
// board support: whether a display is wired at all, its geometry, and
// which extras to bring up.
type GenericOptions struct {
	// Display enables the panel path. When false the adapter reports a
	// virtual geometry with nil handles.
	Display bool
	Width   int
	Height  int
	// Backlight enables the brightness bring-up attempt.
	Backlight   bool
	EnableTouch bool
}

// ESPGeneric drives whatever panel the generic board support was
// configured with, or a virtual surface when there is none.
type ESPGeneric struct {
	sp      SupportPackage
	log     Logger
	opts    GenericOptions
	guard   handleGuard
	cfg     DisplayConfig
	handles Handles
	touch   touch.Pointer
}

// NewESPGeneric returns the generic adapter over sp. A nil log falls
// back to stderr.
func NewESPGeneric(sp SupportPackage, log Logger, opts GenericOptions) *ESPGeneric {
	return &ESPGeneric{sp: sp, log: ensureLogger(log), opts: opts}
}

func (b *ESPGeneric) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("generic: no support package: %w", ErrInvalidArg)
	}
	if b.opts.Display && (b.opts.Width <= 0 || b.opts.Height <= 0) {
		return DisplayConfig{}, Handles{}, fmt.Errorf("generic: display size %dx%d: %w", b.opts.Width, b.opts.Height, ErrInvalidArg)
	}
	if !b.opts.Display {
		cfg := DisplayConfig{
			Width:            genericVirtualWidth,
			Height:           genericVirtualHeight,
			PixelFormat:      PixelFormatRGB565,
			MaxTransferBytes: genericVirtualWidth * genericVirtualHeight * 2,
			HasTouch:         b.opts.EnableTouch,
		}
		b.cfg = cfg
		b.log.WriteLineString(fmt.Sprintf("generic: initialized: virtual %dx%d", cfg.Width, cfg.Height))
		return cfg, Handles{}, nil
	}
	cfg := DisplayConfig{
		Width:            b.opts.Width,
		Height:           b.opts.Height,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: b.opts.Width * b.opts.Height * 2,
		HasTouch:         b.opts.EnableTouch,
	}
	steps := []bringUpStep{
		{name: "display new", run: func() error { return b.displayNew(cfg) }},
		{name: "display on", run: func() error { return b.handles.Panel.SetDisplayOn(true) }},
		{name: "backlight", optional: true, run: b.backlightUp},
	}
	if err := runBringUp(b.log, "generic", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("generic: initialized: %dx%d", cfg.Width, cfg.Height))
	return cfg, b.handles, nil
}

func (b *ESPGeneric) displayNew(cfg DisplayConfig) error {
	h, err := b.sp.DisplayNew(cfg)
	if err != nil {
		return err
	}
	b.handles = h
	b.guard.add(func() { b.handles = Handles{} })
	return nil
}

// backlightUp treats a missing brightness channel as a configuration,
// not a failure.
func (b *ESPGeneric) backlightUp() error {
	if !b.opts.Backlight {
		b.log.WriteLineString("generic: no backlight control configured")
		return nil
	}
	if err := b.sp.BrightnessInit(); err != nil {
		b.log.WriteLineString("generic: no backlight control configured")
		return nil
	}
	return b.sp.BacklightOn()
}

func (b *ESPGeneric) BacklightOn() error  { return b.sp.BacklightOn() }
func (b *ESPGeneric) BacklightOff() error { return b.sp.BacklightOff() }

func (b *ESPGeneric) SetDisplayOn(on bool) error {
	if b.handles.Panel == nil {
		return ErrInvalidState
	}
	return b.handles.Panel.SetDisplayOn(on)
}

func (b *ESPGeneric) TouchInit() error {
	if !b.opts.EnableTouch {
		return ErrNotSupported
	}
	if b.touch != nil {
		return nil
	}
	tp, err := b.sp.TouchNew(TouchParams{Width: b.cfg.Width, Height: b.cfg.Height})
	if err != nil {
		return fmt.Errorf("generic: touch init: %w", err)
	}
	b.touch = tp
	b.guard.add(func() { b.touch = nil })
	return nil
}

func (b *ESPGeneric) TouchRead(out *TouchSample) error {
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

func (b *ESPGeneric) Name() string { return genericName }

func (b *ESPGeneric) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("generic: deinitialized")
	return nil
}
