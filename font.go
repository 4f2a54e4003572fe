package cpdraw

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the size in points of the face used by DrawString
// when no face was configured.
const DefaultFontSize = 12.0

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
	defaultSourceErr  error
)

// DefaultFace returns a face of the Go Regular font at the given size.
// The parsed font is shared by every face.
func DefaultFace(size float64) (text.Face, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewFontSource(goregular.TTF)
		if defaultSourceErr != nil {
			defaultSourceErr = fmt.Errorf("cpdraw: load default font: %w", defaultSourceErr)
		}
	})
	if defaultSourceErr != nil {
		return nil, defaultSourceErr
	}
	return defaultSource.Face(size), nil
}
