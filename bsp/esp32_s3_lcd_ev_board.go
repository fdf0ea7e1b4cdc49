package bsp

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

const (
	s3LCDEVName = "ESP32-S3-LCD-EV-Board"
	// Sub-board 3 geometry, used when the vendor package cannot report
	// the attached panel.
	s3LCDEVFallbackWidth  = 800
	s3LCDEVFallbackHeight = 480
)

// S3LCDEVOptions selects the optional EV board peripherals.
type S3LCDEVOptions struct {
	EnableTouch bool
}

// ESP32S3LCDEV drives the ESP32-S3-LCD-EV-Board. The board takes
// interchangeable sub-boards, so the panel geometry is asked of the
// vendor package rather than hard-coded.
type ESP32S3LCDEV struct {
	sp      SupportPackage
	log     Logger
	opts    S3LCDEVOptions
	guard   handleGuard
	cfg     DisplayConfig
	handles Handles
	touch   touch.Pointer
}

// NewESP32S3LCDEV returns the EV board adapter over sp. A nil log falls
// back to stderr.
func NewESP32S3LCDEV(sp SupportPackage, log Logger, opts S3LCDEVOptions) *ESP32S3LCDEV {
	return &ESP32S3LCDEV{sp: sp, log: ensureLogger(log), opts: opts}
}

func (b *ESP32S3LCDEV) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("lcd ev: no support package: %w", ErrInvalidArg)
	}
	width, height := 0, 0
	if rs, ok := b.sp.(ResolutionSupport); ok {
		width, height = rs.DisplayResolution()
	}
	if width <= 0 || height <= 0 {
		width, height = s3LCDEVFallbackWidth, s3LCDEVFallbackHeight
	}
	cfg := DisplayConfig{
		Width:            width,
		Height:           height,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: width * height * 2,
		HasTouch:         b.opts.EnableTouch,
	}
	steps := []bringUpStep{
		{name: "display new", run: func() error { return b.displayNew(cfg) }},
		{name: "display on", run: func() error { return b.handles.Panel.SetDisplayOn(true) }},
	}
	if err := runBringUp(b.log, "lcd ev", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("lcd ev: initialized: %dx%d", cfg.Width, cfg.Height))
	return cfg, b.handles, nil
}

func (b *ESP32S3LCDEV) displayNew(cfg DisplayConfig) error {
	h, err := b.sp.DisplayNew(cfg)
	if err != nil {
		return err
	}
	b.handles = h
	b.guard.add(func() { b.handles = Handles{} })
	return nil
}

// The RGB sub-boards run their backlight straight from the panel rail;
// there is nothing to switch.
func (b *ESP32S3LCDEV) BacklightOn() error  { return ErrNotSupported }
func (b *ESP32S3LCDEV) BacklightOff() error { return ErrNotSupported }

func (b *ESP32S3LCDEV) SetDisplayOn(on bool) error {
	if b.handles.Panel == nil {
		return ErrInvalidState
	}
	return b.handles.Panel.SetDisplayOn(on)
}

func (b *ESP32S3LCDEV) TouchInit() error {
	if !b.opts.EnableTouch {
		return ErrNotSupported
	}
	if b.touch != nil {
		return nil
	}
	tp, err := b.sp.TouchNew(TouchParams{Width: b.cfg.Width, Height: b.cfg.Height})
	if err != nil {
		return fmt.Errorf("lcd ev: touch init: %w", err)
	}
	b.touch = tp
	b.guard.add(func() { b.touch = nil })
	return nil
}

func (b *ESP32S3LCDEV) TouchRead(out *TouchSample) error {
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

func (b *ESP32S3LCDEV) Name() string { return s3LCDEVName }

func (b *ESP32S3LCDEV) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("lcd ev: deinitialized")
	return nil
}
