// Command boardinfo brings every supported board up against a simulated
// support package and prints the capability surface each one reports.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"espsdl/bsp"
	"espsdl/internal/buildinfo"
)

func main() {
	var filter string
	flag.StringVar(&filter, "board", "", "Only show boards whose name contains this substring.")
	flag.Parse()

	if err := run(os.Stdout, filter); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// boards lists one adapter per supported board, each over its own
// simulated support package, with the options the board tags ship.
func boards() []bsp.Board {
	quiet := bsp.Discard
	return []bsp.Board{
		bsp.NewM5StackCoreS3(bsp.NewSimSupport(bsp.SimConfig{}), quiet),
		bsp.NewM5StackTab5(bsp.NewSimSupport(bsp.SimConfig{}), quiet, bsp.Tab5Options{EnableTouch: true}),
		bsp.NewM5AtomS3(bsp.NewSimSupport(bsp.SimConfig{}), quiet),
		bsp.NewESPBox3(bsp.NewSimSupport(bsp.SimConfig{}), quiet),
		bsp.NewESPDevKit(bsp.NewSimSupport(bsp.SimConfig{}), quiet, bsp.DevKitOptions{LEDs: true, Buttons: true, Storage: true}),
		bsp.NewESPGeneric(bsp.NewSimSupport(bsp.SimConfig{}), quiet, bsp.GenericOptions{
			Display: true, Width: 320, Height: 240, Backlight: true, EnableTouch: true,
		}),
		bsp.NewESP32P4FunctionEV(bsp.NewSimSupport(bsp.SimConfig{}), quiet, bsp.P4Options{EnableTouch: true}),
		bsp.NewESP32S3LCDEV(bsp.NewSimSupport(bsp.SimConfig{}), quiet, bsp.S3LCDEVOptions{EnableTouch: true}),
	}
}

func run(w io.Writer, filter string) error {
	fmt.Fprintf(w, "espsdl boards (%s)\n\n", buildinfo.Short())
	tw := tabwriter.NewWriter(w, 2, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "BOARD\tRESOLUTION\tFORMAT\tMAX TRANSFER\tTOUCH")
	for _, b := range boards() {
		if filter != "" && !strings.Contains(strings.ToLower(b.Name()), strings.ToLower(filter)) {
			continue
		}
		cfg, _, err := b.Init()
		if err != nil {
			return fmt.Errorf("%s: %w", b.Name(), err)
		}
		hasTouch := "no"
		if cfg.HasTouch {
			hasTouch = "yes"
		}
		fmt.Fprintf(tw, "%s\t%dx%d\t%s\t%d\t%s\n",
			b.Name(), cfg.Width, cfg.Height, cfg.PixelFormat, cfg.MaxTransferBytes, hasTouch)
		_ = b.Deinit()
	}
	return tw.Flush()
}
