// Command debugdrawing opens the debug renderer showcase.
package main

import (
	"github.com/jakecoffman/cpdraw"
	"github.com/jakecoffman/cpdraw/examples"
	"github.com/jakecoffman/cpdraw/examples/debugdrawing"
	"github.com/jakecoffman/cpdraw/examples/window"
	"github.com/jakecoffman/cpdraw/internal/cli"
	"github.com/jakecoffman/cpdraw/internal/config"
)

func main() {
	cli.Main("debugdrawing", func(c config.Config) (examples.App, examples.Settings) {
		app := debugdrawing.New(cpdraw.NewScale(c.PointsPerMeter), c.DebugFlags|cpdraw.DrawAABB|cpdraw.DrawCenterOfMass)
		return app, debugdrawing.Settings(c.Width, c.Height)
	}, window.Run)
}
