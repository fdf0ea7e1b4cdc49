package bsp

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

const (
	coreS3Name   = "M5Stack Core S3"
	coreS3Width  = 320
	coreS3Height = 240
)

// M5StackCoreS3 drives the M5Stack Core S3: a 320x240 RGB565 panel with
// a capacitive touch overlay and PWM backlight control.
type M5StackCoreS3 struct {
	sp      SupportPackage
	log     Logger
	guard   handleGuard
	cfg     DisplayConfig
	handles Handles
	touch   touch.Pointer
}

// NewM5StackCoreS3 returns the Core S3 adapter over sp. A nil log falls
// back to stderr.
func NewM5StackCoreS3(sp SupportPackage, log Logger) *M5StackCoreS3 {
	return &M5StackCoreS3{sp: sp, log: ensureLogger(log)}
}

func (b *M5StackCoreS3) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("core s3: no support package: %w", ErrInvalidArg)
	}
	cfg := DisplayConfig{
		Width:            coreS3Width,
		Height:           coreS3Height,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: coreS3Width * coreS3Height * 2,
		HasTouch:         true,
	}
	steps := []bringUpStep{
		{name: "brightness init", run: b.sp.BrightnessInit},
		{name: "display new", run: func() error { return b.displayNew(cfg) }},
		{name: "display on", run: func() error { return b.handles.Panel.SetDisplayOn(true) }},
		{name: "backlight on", run: b.sp.BacklightOn},
	}
	if err := runBringUp(b.log, "core s3", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("core s3: initialized: %dx%d", cfg.Width, cfg.Height))
	return cfg, b.handles, nil
}

func (b *M5StackCoreS3) displayNew(cfg DisplayConfig) error {
	h, err := b.sp.DisplayNew(cfg)
	if err != nil {
		return err
	}
	b.handles = h
	b.guard.add(func() { b.handles = Handles{} })
	return nil
}

func (b *M5StackCoreS3) BacklightOn() error  { return b.sp.BacklightOn() }
func (b *M5StackCoreS3) BacklightOff() error { return b.sp.BacklightOff() }

func (b *M5StackCoreS3) SetDisplayOn(on bool) error {
	if b.handles.Panel == nil {
		return ErrInvalidState
	}
	return b.handles.Panel.SetDisplayOn(on)
}

func (b *M5StackCoreS3) TouchInit() error {
	if b.touch != nil {
		return nil
	}
	tp, err := b.sp.TouchNew(TouchParams{Width: coreS3Width, Height: coreS3Height})
	if err != nil {
		return fmt.Errorf("core s3: touch init: %w", err)
	}
	b.touch = tp
	b.guard.add(func() { b.touch = nil })
	return nil
}

func (b *M5StackCoreS3) TouchRead(out *TouchSample) error {
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

func (b *M5StackCoreS3) Name() string { return coreS3Name }

func (b *M5StackCoreS3) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("core s3: deinitialized")
	return nil
}
