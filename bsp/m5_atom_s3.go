package bsp

import "fmt"

const (
	atomS3Name   = "M5 Atom S3"
	atomS3Width  = 128
	atomS3Height = 128
)

// M5AtomS3 drives the M5 Atom S3, a 128x128 RGB565 panel with no touch
// hardware.
type M5AtomS3 struct {
	sp      SupportPackage
	log     Logger
	guard   handleGuard
	cfg     DisplayConfig
	handles Handles
}

// NewM5AtomS3 returns the Atom S3 adapter over sp. A nil log falls back
// to stderr.
func NewM5AtomS3(sp SupportPackage, log Logger) *M5AtomS3 {
	return &M5AtomS3{sp: sp, log: ensureLogger(log)}
}

func (b *M5AtomS3) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("atom s3: no support package: %w", ErrInvalidArg)
	}
	cfg := DisplayConfig{
		Width:            atomS3Width,
		Height:           atomS3Height,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: atomS3Width * atomS3Height * 2,
	}
	steps := []bringUpStep{
		{name: "brightness init", run: b.sp.BrightnessInit},
		{name: "display new", run: func() error { return b.displayNew(cfg) }},
		{name: "display on", run: func() error { return b.handles.Panel.SetDisplayOn(true) }},
		{name: "backlight on", run: b.sp.BacklightOn},
	}
	if err := runBringUp(b.log, "atom s3", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("atom s3: initialized: %dx%d", cfg.Width, cfg.Height))
	return cfg, b.handles, nil
}

func (b *M5AtomS3) displayNew(cfg DisplayConfig) error {
	h, err := b.sp.DisplayNew(cfg)
	if err != nil {
		return err
	}
	b.handles = h
	b.guard.add(func() { b.handles = Handles{} })
	return nil
}

func (b *M5AtomS3) BacklightOn() error  { return b.sp.BacklightOn() }
func (b *M5AtomS3) BacklightOff() error { return b.sp.BacklightOff() }

func (b *M5AtomS3) SetDisplayOn(on bool) error {
	if b.handles.Panel == nil {
		return ErrInvalidState
	}
	return b.handles.Panel.SetDisplayOn(on)
}

func (b *M5AtomS3) TouchInit() error { return ErrNotSupported }

func (b *M5AtomS3) TouchRead(out *TouchSample) error {
	if out == nil {
		return ErrInvalidArg
	}
	*out = TouchSample{}
	return ErrNotSupported
}

func (b *M5AtomS3) Name() string { return atomS3Name }

func (b *M5AtomS3) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("atom s3: deinitialized")
	return nil
}
