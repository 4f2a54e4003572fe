package cpdraw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// recorder is a Canvas that logs every call as a short string.
type recorder struct {
	ops       []string
	color     [4]float64
	lineWidth float64
	depth     int
	face      text.Face
	failNext  error
}

func (c *recorder) log(format string, args ...interface{}) {
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

func (c *recorder) ClearWithColor(col gg.RGBA) {
	c.log("clear %.2f %.2f %.2f %.2f", col.R, col.G, col.B, col.A)
}

func (c *recorder) SetRGBA(r, g, b, a float64) {
	c.color = [4]float64{r, g, b, a}
}

func (c *recorder) SetLineWidth(width float64) {
	c.lineWidth = width
}

func (c *recorder) SetLineCap(lineCap gg.LineCap) {
	c.log("cap %d", lineCap)
}

func (c *recorder) MoveTo(x, y float64) { c.log("move %.0f %.0f", x, y) }
func (c *recorder) LineTo(x, y float64) { c.log("line %.0f %.0f", x, y) }
func (c *recorder) ClosePath()          { c.log("close") }

func (c *recorder) DrawCircle(x, y, r float64) {
	c.log("circle %.0f %.0f %.0f", x, y, r)
}
func (c *recorder) DrawLine(x1, y1, x2, y2 float64) {
	c.log("segment %.0f %.0f %.0f %.0f", x1, y1, x2, y2)
}
func (c *recorder) DrawRectangle(x, y, w, h float64) {
	c.log("rect %.0f %.0f %.0f %.0f", x, y, w, h)
}

func (c *recorder) paint(op string) error {
	c.log("%s %.2f %.2f %.2f %.2f w%.0f", op, c.color[0], c.color[1], c.color[2], c.color[3], c.lineWidth)
	err := c.failNext
	c.failNext = nil
	return err
}

func (c *recorder) Fill() error         { return c.paint("fill") }
func (c *recorder) FillPreserve() error { return c.paint("fillp") }
func (c *recorder) Stroke() error       { return c.paint("stroke") }

func (c *recorder) Push() { c.depth++; c.log("push") }
func (c *recorder) Pop()  { c.depth--; c.log("pop") }

func (c *recorder) SetFont(face text.Face) { c.face = face }

func (c *recorder) DrawString(s string, x, y float64) {
	c.log("text %q %.0f %.0f %.2f", s, x, y, c.color[3])
}

func (c *recorder) count(prefix string) int {
	n := 0
	for _, op := range c.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func (c *recorder) String() string {
	return strings.Join(c.ops, "\n")
}

var errCanvas = errors.New("canvas failed")
