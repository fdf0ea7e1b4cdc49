package bsp

import "fmt"

// Screen is the front door of the shim. It owns the compiled-in board's
// lifecycle and forwards the capability surface to it. A Screen is not
// safe for concurrent use; drive it from one goroutine like the render
// loop it exists for.
type Screen struct {
	sp      SupportPackage
	log     Logger
	board   Board
	cfg     DisplayConfig
	handles Handles
	inited  bool
}

// New returns a Screen over a fresh simulated support package.
func New() *Screen {
	return NewWithSupport(NewSimSupport(SimConfig{}), nil)
}

// NewWithSupport returns a Screen over sp. A nil log falls back to
// stderr.
func NewWithSupport(sp SupportPackage, log Logger) *Screen {
	return &Screen{sp: sp, log: ensureLogger(log)}
}

// Init constructs the compiled-in board and runs its bring-up, reporting
// the resulting display configuration. A second Init without an
// intervening Close fails.
func (s *Screen) Init() (DisplayConfig, error) {
	if s.inited {
		return DisplayConfig{}, fmt.Errorf("espsdl: already initialized: %w", ErrInvalidState)
	}
	s.log.WriteLineString("espsdl: initializing board abstraction")
	board, err := newSelectedBoard(s.sp, s.log)
	if err != nil {
		return DisplayConfig{}, err
	}
	return s.initBoard(board)
}

func (s *Screen) initBoard(board Board) (DisplayConfig, error) {
	if s.inited {
		return DisplayConfig{}, fmt.Errorf("espsdl: already initialized: %w", ErrInvalidState)
	}
	s.log.WriteLineString("espsdl: selected board: " + board.Name())
	cfg, handles, err := board.Init()
	if err != nil {
		return DisplayConfig{}, err
	}
	s.board = board
	s.cfg = cfg
	s.handles = handles
	s.inited = true
	return cfg, nil
}

func (s *Screen) BacklightOn() error {
	if !s.inited {
		return s.uninitialized("backlight on")
	}
	return s.board.BacklightOn()
}

func (s *Screen) BacklightOff() error {
	if !s.inited {
		return s.uninitialized("backlight off")
	}
	return s.board.BacklightOff()
}

// SetDisplayOn switches panel output on boards that can, and reports
// ErrNotSupported or success on those that cannot, per board policy.
func (s *Screen) SetDisplayOn(on bool) error {
	if !s.inited {
		return s.uninitialized("display toggle")
	}
	return s.board.SetDisplayOn(on)
}

// TouchInit brings up the touch controller. Boards without touch report
// ErrNotSupported.
func (s *Screen) TouchInit() error {
	if !s.inited {
		return s.uninitialized("touch init")
	}
	return s.board.TouchInit()
}

// TouchRead polls the touch controller into out. When no finger is down
// it stores a zero sample and succeeds.
func (s *Screen) TouchRead(out *TouchSample) error {
	if out == nil {
		return fmt.Errorf("espsdl: touch read into nil sample: %w", ErrInvalidArg)
	}
	if !s.inited {
		*out = TouchSample{}
		return s.uninitialized("touch read")
	}
	return s.board.TouchRead(out)
}

// Name reports the compiled-in board name. It works before Init; a
// build without a board tag reports the empty string.
func (s *Screen) Name() string {
	if s.board != nil {
		return s.board.Name()
	}
	return selectedBoardName
}

// Config reports the display configuration Init produced, zero before
// Init.
func (s *Screen) Config() DisplayConfig { return s.cfg }

// Panel returns the panel handle, nil before Init and on boards without
// a display.
func (s *Screen) Panel() Panel { return s.handles.Panel }

// IO returns the panel transport handle, nil before Init and on boards
// without a display.
func (s *Screen) IO() PanelIO { return s.handles.IO }

// Close deinitializes the board and releases its handles. It is
// idempotent, and a closed Screen may be initialized again.
func (s *Screen) Close() error {
	if !s.inited {
		return nil
	}
	s.log.WriteLineString("espsdl: deinitializing board abstraction")
	err := s.board.Deinit()
	s.board = nil
	s.cfg = DisplayConfig{}
	s.handles = Handles{}
	s.inited = false
	return err
}

func (s *Screen) uninitialized(op string) error {
	return fmt.Errorf("espsdl: %s before init: %w", op, ErrInvalidState)
}
