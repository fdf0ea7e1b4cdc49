// Package bsp is a board-selection shim for ESP development boards: a
// uniform display/touch surface, one adapter per supported board calling
// into a vendor support package, and a compile-time switch choosing
// which board a build carries.
package bsp

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

var (
	// ErrInvalidArg reports a missing required argument.
	ErrInvalidArg = errors.New("invalid argument")
	// ErrInvalidState reports an operation that needs prior initialization.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotSupported reports a capability absent on the selected board.
	ErrNotSupported = errors.New("not supported")
)

// PixelFormat is the framebuffer pixel encoding. The values are the SDL
// numeric constants, kept verbatim so configurations round-trip against
// SDL-style consumers.
type PixelFormat uint32

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = 0x15151002
	// PixelFormatRGB888 is 24bpp packed red, green, blue.
	PixelFormatRGB888 PixelFormat = 0x16161804
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "RGB565"
	case PixelFormatRGB888:
		return "RGB888"
	}
	return "unknown"
}

// BytesPerPixel returns the storage size of one pixel, 0 for an unknown
// format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatRGB888:
		return 3
	}
	return 0
}

// DisplayConfig describes the display a board's bring-up produced. It is
// fixed for the lifetime of the selection.
type DisplayConfig struct {
	Width            int
	Height           int
	PixelFormat      PixelFormat
	MaxTransferBytes int
	HasTouch         bool
}

// TouchSample is one polled touch reading.
type TouchSample struct {
	Pressed bool
	X       int
	Y       int
}

// TouchParams bounds the touch sensor's native coordinate frame.
type TouchParams struct {
	Width  int
	Height int
}

// Handles carries the vendor objects produced by display bring-up.
// Boards without a physical panel leave both nil.
type Handles struct {
	Panel Panel
	IO    PanelIO
}

// Panel is the logical display panel: the drawing surface every panel
// driver provides, plus the panel on/off primitive.
type Panel interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
	SetDisplayOn(on bool) error
}

// PanelIO is the bus transport beneath a panel.
type PanelIO interface {
	MaxTransferBytes() int
}

// SupportPackage is the seam to the vendor board-support package. The
// simulated implementation ships with this module; tests inject failing
// ones.
type SupportPackage interface {
	// BrightnessInit prepares backlight PWM control.
	BrightnessInit() error
	BacklightOn() error
	BacklightOff() error
	// DisplayNew brings up the panel described by cfg.
	DisplayNew(cfg DisplayConfig) (Handles, error)
	// TouchNew constructs the touch controller handle.
	TouchNew(p TouchParams) (touch.Pointer, error)
}

// LEDSupport is implemented by support packages with indicator LEDs.
type LEDSupport interface {
	LEDInit() error
}

// ButtonSupport is implemented by support packages with user buttons.
type ButtonSupport interface {
	ButtonInit() error
}

// StorageSupport is implemented by support packages with mountable
// on-board storage. A mount taken during bring-up is released on deinit.
type StorageSupport interface {
	MountStorage() error
	UnmountStorage() error
}

// ResolutionSupport reports the panel resolution the vendor package
// detected, (0, 0) when undetermined.
type ResolutionSupport interface {
	DisplayResolution() (width, height int)
}

// Board is the per-board capability set. Exactly one implementation is
// compiled into a build; the Screen facade owns its lifecycle.
type Board interface {
	// Init runs the board's bring-up sequence and reports the resulting
	// display configuration and vendor handles.
	Init() (DisplayConfig, Handles, error)
	BacklightOn() error
	BacklightOff() error
	// SetDisplayOn forwards the panel on/off primitive.
	SetDisplayOn(on bool) error
	// TouchInit constructs the touch handle on boards with touch.
	TouchInit() error
	// TouchRead fills out with one touch poll.
	TouchRead(out *TouchSample) error
	// Name identifies the board. It never fails.
	Name() string
	// Deinit releases everything Init and TouchInit acquired. It is
	// idempotent and always returns nil.
	Deinit() error
}

// sensorMapper is implemented by boards whose touch sensor frame is
// rotated against the panel; the window runner uses it to translate
// cursor positions into the sensor frame.
type sensorMapper interface {
	mapToSensor(x, y int) (sx, sy int)
}
