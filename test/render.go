package test

import (
	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

// Render draws a component into a fixed-size frame and returns the
// flattened output, for golden-ish assertions in component tests.
func Render(c runtime.Component, width, height int) (string, error) {
	f := screen.NewFrame(width, height)
	if err := c.Render(f, cellbuf.Rect(0, 0, width, height)); err != nil {
		return "", err
	}
	return f.Render(), nil
}
