package bsp

import "fmt"

// bringUpStep is one stage of a board's Init sequence. A mandatory step
// aborts bring-up on failure; an optional one is logged and skipped.
type bringUpStep struct {
	name     string
	optional bool
	run      func() error
}

// runBringUp executes steps in order. On a mandatory failure it releases
// whatever earlier steps put on guard and returns the failure wrapped
// with the step name.
func runBringUp(log Logger, tag string, steps []bringUpStep, guard *handleGuard) error {
	for _, st := range steps {
		err := st.run()
		if err == nil {
			continue
		}
		if st.optional {
			log.WriteLineString(tag + ": " + st.name + " failed: " + err.Error() + " (continuing)")
			continue
		}
		guard.release()
		return fmt.Errorf("%s: %s: %w", tag, st.name, err)
	}
	return nil
}

// handleGuard collects cleanups for acquired handles and runs them in
// reverse order, once.
type handleGuard struct {
	closers []func()
}

func (g *handleGuard) add(fn func()) {
	g.closers = append(g.closers, fn)
}

func (g *handleGuard) release() {
	for i := len(g.closers) - 1; i >= 0; i-- {
		g.closers[i]()
	}
	g.closers = nil
}
