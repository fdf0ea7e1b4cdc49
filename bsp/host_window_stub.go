//go:build !cgo

package bsp

import "errors"

func RunWindow(_ func(s *Screen) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
