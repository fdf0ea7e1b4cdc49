package bsp

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

const (
	tab5Name   = "M5Stack Tab5"
	tab5Width  = 1280
	tab5Height = 720
)

// Tab5Options selects the optional Tab5 peripherals.
type Tab5Options struct {
	EnableTouch bool
}

// M5StackTab5 drives the M5Stack Tab5, a 1280x720 RGB565 MIPI-DSI panel.
// The touch sensor is mounted rotated against the panel, so samples are
// remapped into landscape panel coordinates.
type M5StackTab5 struct {
	sp      SupportPackage
	log     Logger
	opts    Tab5Options
	guard   handleGuard
	cfg     DisplayConfig
	handles Handles
	touch   touch.Pointer
}

// NewM5StackTab5 returns the Tab5 adapter over sp. A nil log falls back
// to stderr.
func NewM5StackTab5(sp SupportPackage, log Logger, opts Tab5Options) *M5StackTab5 {
	return &M5StackTab5{sp: sp, log: ensureLogger(log), opts: opts}
}

func (b *M5StackTab5) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("tab5: no support package: %w", ErrInvalidArg)
	}
	cfg := DisplayConfig{
		Width:            tab5Width,
		Height:           tab5Height,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: tab5Width * tab5Height * 2,
		HasTouch:         b.opts.EnableTouch,
	}
	steps := []bringUpStep{
		{name: "display new", run: func() error { return b.displayNew(cfg) }},
		// The DSI panel streams as soon as it exists; only the backlight
		// is best-effort.
		{name: "backlight", optional: true, run: func() error {
			if err := b.sp.BrightnessInit(); err != nil {
				return err
			}
			return b.sp.BacklightOn()
		}},
	}
	if err := runBringUp(b.log, "tab5", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("tab5: initialized: %dx%d", cfg.Width, cfg.Height))
	return cfg, b.handles, nil
}

func (b *M5StackTab5) displayNew(cfg DisplayConfig) error {
	h, err := b.sp.DisplayNew(cfg)
	if err != nil {
		return err
	}
	b.handles = h
	b.guard.add(func() { b.handles = Handles{} })
	return nil
}

func (b *M5StackTab5) BacklightOn() error {
	err := b.sp.BacklightOn()
	if err != nil {
		b.log.WriteLineString("tab5: backlight on failed: " + err.Error())
	}
	return err
}

func (b *M5StackTab5) BacklightOff() error {
	err := b.sp.BacklightOff()
	if err != nil {
		b.log.WriteLineString("tab5: backlight off failed: " + err.Error())
	}
	return err
}

func (b *M5StackTab5) SetDisplayOn(on bool) error {
	if b.handles.Panel == nil {
		return nil
	}
	return b.handles.Panel.SetDisplayOn(on)
}

func (b *M5StackTab5) TouchInit() error {
	if !b.opts.EnableTouch {
		return ErrNotSupported
	}
	if b.touch != nil {
		return nil
	}
	tp, err := b.sp.TouchNew(TouchParams{Width: tab5Width, Height: tab5Height})
	if err != nil {
		return fmt.Errorf("tab5: touch init: %w", err)
	}
	b.touch = tp
	b.guard.add(func() { b.touch = nil })
	return nil
}

func (b *M5StackTab5) TouchRead(out *TouchSample) error {
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
		// Sensor x runs down the panel, sensor y runs across it.
		out.Pressed = true
		out.X = pt.Y * tab5Width / tab5Height
		out.Y = tab5Height - pt.X*tab5Height/tab5Width
	}
	return nil
}

// mapToSensor inverts the TouchRead remap, taking panel coordinates back
// into the sensor frame.
func (b *M5StackTab5) mapToSensor(x, y int) (sx, sy int) {
	return (tab5Height - y) * tab5Width / tab5Height, x * tab5Height / tab5Width
}

func (b *M5StackTab5) Name() string { return tab5Name }

func (b *M5StackTab5) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("tab5: deinitialized")
	return nil
}
