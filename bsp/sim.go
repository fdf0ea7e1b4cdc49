package bsp

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers/touch"
)

// SimConfig injects failures into individual support calls, one flag per
// vendor entry point.
type SimConfig struct {
	FailBrightnessInit bool
	FailDisplayNew     bool
	FailBacklightOn    bool
	FailTouchNew       bool
	FailMount          bool
}

var (
	errSimBrightness = errors.New("sim: brightness pwm unavailable")
	errSimDisplay    = errors.New("sim: panel bring-up refused")
	errSimBacklight  = errors.New("sim: backlight stuck off")
	errSimTouch      = errors.New("sim: touch controller absent")
	errSimMount      = errors.New("sim: storage mount refused")
)

// SimSupport is the simulated vendor support package: an in-memory panel,
// a touch sensor fed through SetTouchState, and state flags for every
// peripheral the board adapters exercise. It implements SupportPackage
// plus all of the optional capability interfaces.
type SimSupport struct {
	cfg SimConfig

	mu              sync.Mutex
	panel           *SimPanel
	io              *simIO
	brightnessReady bool
	backlightLit    bool
	ledsReady       bool
	buttonsReady    bool
	mounted         bool
	resW, resH      int

	touchX, touchY int
	touchDown      bool
	touchW, touchH int
}

// NewSimSupport returns a simulated support package.
func NewSimSupport(cfg SimConfig) *SimSupport {
	return &SimSupport{cfg: cfg}
}

func (s *SimSupport) BrightnessInit() error {
	if s.cfg.FailBrightnessInit {
		return errSimBrightness
	}
	s.mu.Lock()
	s.brightnessReady = true
	s.mu.Unlock()
	return nil
}

func (s *SimSupport) BacklightOn() error {
	if s.cfg.FailBacklightOn {
		return errSimBacklight
	}
	s.mu.Lock()
	s.backlightLit = true
	s.mu.Unlock()
	return nil
}

func (s *SimSupport) BacklightOff() error {
	s.mu.Lock()
	s.backlightLit = false
	s.mu.Unlock()
	return nil
}

func (s *SimSupport) DisplayNew(cfg DisplayConfig) (Handles, error) {
	if s.cfg.FailDisplayNew {
		return Handles{}, errSimDisplay
	}
	p := newSimPanel(cfg)
	io := &simIO{max: cfg.MaxTransferBytes}
	s.mu.Lock()
	s.panel = p
	s.io = io
	s.mu.Unlock()
	return Handles{Panel: p, IO: io}, nil
}

func (s *SimSupport) TouchNew(p TouchParams) (touch.Pointer, error) {
	if s.cfg.FailTouchNew {
		return nil, errSimTouch
	}
	s.mu.Lock()
	s.touchW, s.touchH = p.Width, p.Height
	s.mu.Unlock()
	return &simTouch{sp: s}, nil
}

func (s *SimSupport) LEDInit() error {
	s.mu.Lock()
	s.ledsReady = true
	s.mu.Unlock()
	return nil
}

func (s *SimSupport) ButtonInit() error {
	s.mu.Lock()
	s.buttonsReady = true
	s.mu.Unlock()
	return nil
}

func (s *SimSupport) MountStorage() error {
	if s.cfg.FailMount {
		return errSimMount
	}
	s.mu.Lock()
	s.mounted = true
	s.mu.Unlock()
	return nil
}

func (s *SimSupport) UnmountStorage() error {
	s.mu.Lock()
	s.mounted = false
	s.mu.Unlock()
	return nil
}

// SetDisplayResolution primes the detected-resolution answer that boards
// probing the vendor package will see.
func (s *SimSupport) SetDisplayResolution(width, height int) {
	s.mu.Lock()
	s.resW, s.resH = width, height
	s.mu.Unlock()
}

func (s *SimSupport) DisplayResolution() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resW, s.resH
}

// SetTouchState feeds the simulated sensor one state change, clamped to
// the frame TouchNew configured.
func (s *SimSupport) SetTouchState(x, y int, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touchW > 0 {
		x = clampInt(x, 0, s.touchW)
	}
	if s.touchH > 0 {
		y = clampInt(y, 0, s.touchH)
	}
	s.touchX, s.touchY, s.touchDown = x, y, pressed
}

// Panel returns the simulated panel, nil before DisplayNew.
func (s *SimSupport) Panel() *SimPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

func (s *SimSupport) BrightnessReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brightnessReady
}

func (s *SimSupport) BacklightLit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backlightLit
}

func (s *SimSupport) LEDsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledsReady
}

func (s *SimSupport) ButtonsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttonsReady
}

func (s *SimSupport) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

type simIO struct {
	max int
}

func (io *simIO) MaxTransferBytes() int { return io.max }
