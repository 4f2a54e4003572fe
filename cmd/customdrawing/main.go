// Command customdrawing opens the bubble sample.
package main

import (
	"github.com/jakecoffman/cpdraw"
	"github.com/jakecoffman/cpdraw/examples"
	"github.com/jakecoffman/cpdraw/examples/customdrawing"
	"github.com/jakecoffman/cpdraw/examples/window"
	"github.com/jakecoffman/cpdraw/internal/cli"
	"github.com/jakecoffman/cpdraw/internal/config"
)

func main() {
	cli.Main("customdrawing", func(c config.Config) (examples.App, examples.Settings) {
		app := customdrawing.New(customdrawing.Options{
			Bubbles:    c.Bubbles,
			Scale:      cpdraw.NewScale(c.PointsPerMeter),
			Seed:       c.Seed,
			DebugFlags: c.DebugFlags,
			ShowDebug:  c.ShowDebug,
		})
		return app, customdrawing.Settings(c.Width, c.Height)
	}, window.Run)
}
