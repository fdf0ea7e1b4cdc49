package bsp

import "fmt"

const (
	devKitName = "ESP BSP DevKit (LEDs/Buttons)"
	// Headless devkits report a virtual portrait panel so SDL-style
	// consumers still get a usable surface.
	devKitWidth  = 240
	devKitHeight = 320
)

// DevKitOptions selects which devkit peripherals bring-up touches. All
// of them are best-effort.
type DevKitOptions struct {
	LEDs    bool
	Buttons bool
	Storage bool
}

// ESPDevKit drives plain ESP devkits that have LEDs, buttons and flash
// storage but no display: the panel handles stay nil and the reported
// geometry is virtual.
type ESPDevKit struct {
	sp    SupportPackage
	log   Logger
	opts  DevKitOptions
	guard handleGuard
	cfg   DisplayConfig
}

// NewESPDevKit returns the devkit adapter over sp. A nil log falls back
// to stderr.
func NewESPDevKit(sp SupportPackage, log Logger, opts DevKitOptions) *ESPDevKit {
	return &ESPDevKit{sp: sp, log: ensureLogger(log), opts: opts}
}

func (b *ESPDevKit) Init() (DisplayConfig, Handles, error) {
	if b.sp == nil {
		return DisplayConfig{}, Handles{}, fmt.Errorf("devkit: no support package: %w", ErrInvalidArg)
	}
	cfg := DisplayConfig{
		Width:            devKitWidth,
		Height:           devKitHeight,
		PixelFormat:      PixelFormatRGB565,
		MaxTransferBytes: devKitWidth * devKitHeight * 2,
	}
	var steps []bringUpStep
	if b.opts.LEDs {
		steps = append(steps, bringUpStep{name: "led init", optional: true, run: b.ledInit})
	}
	if b.opts.Buttons {
		steps = append(steps, bringUpStep{name: "button init", optional: true, run: b.buttonInit})
	}
	if b.opts.Storage {
		steps = append(steps, bringUpStep{name: "storage mount", optional: true, run: b.mountStorage})
	}
	if err := runBringUp(b.log, "devkit", steps, &b.guard); err != nil {
		return DisplayConfig{}, Handles{}, err
	}
	b.cfg = cfg
	b.log.WriteLineString(fmt.Sprintf("devkit: initialized: virtual %dx%d", cfg.Width, cfg.Height))
	return cfg, Handles{}, nil
}

func (b *ESPDevKit) ledInit() error {
	ls, ok := b.sp.(LEDSupport)
	if !ok {
		return ErrNotSupported
	}
	return ls.LEDInit()
}

func (b *ESPDevKit) buttonInit() error {
	bs, ok := b.sp.(ButtonSupport)
	if !ok {
		return ErrNotSupported
	}
	return bs.ButtonInit()
}

func (b *ESPDevKit) mountStorage() error {
	ss, ok := b.sp.(StorageSupport)
	if !ok {
		return ErrNotSupported
	}
	if err := ss.MountStorage(); err != nil {
		return err
	}
	b.guard.add(func() {
		if err := ss.UnmountStorage(); err != nil {
			b.log.WriteLineString("devkit: storage unmount failed: " + err.Error())
		}
	})
	return nil
}

// BacklightOn reports success so consumers driving every board the same
// way keep working; there is no backlight to switch.
func (b *ESPDevKit) BacklightOn() error {
	b.log.WriteLineString("devkit: backlight control not available")
	return nil
}

func (b *ESPDevKit) BacklightOff() error {
	b.log.WriteLineString("devkit: backlight control not available")
	return nil
}

func (b *ESPDevKit) SetDisplayOn(on bool) error { return nil }

func (b *ESPDevKit) TouchInit() error { return ErrNotSupported }

func (b *ESPDevKit) TouchRead(out *TouchSample) error {
	if out == nil {
		return ErrInvalidArg
	}
	*out = TouchSample{}
	return ErrNotSupported
}

func (b *ESPDevKit) Name() string { return devKitName }

func (b *ESPDevKit) Deinit() error {
	b.guard.release()
	b.cfg = DisplayConfig{}
	b.log.WriteLineString("devkit: deinitialized")
	return nil
}
