package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/config"
	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

var counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// Counter is the manual counter: one key increments, another
// decrements, each change requests a redraw.
type Counter struct {
	runtime.Base
	increment string
	decrement string
	count     int
}

func NewCounter() *Counter {
	return &Counter{increment: "i", decrement: "d"}
}

func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) Init(cfg runtime.Config) error {
	if conf, ok := cfg.(*config.Config); ok {
		c.increment = conf.Keys.Increment
		c.decrement = conf.Keys.Decrement
	}
	return nil
}

func (c *Counter) HandleEvent(ev runtime.Event) (runtime.Action, error) {
	key, ok := ev.(runtime.KeyEvent)
	if !ok {
		return nil, nil
	}
	switch key.String() {
	case c.increment:
		c.count++
		return runtime.ActionRender{}, nil
	case c.decrement:
		c.count--
		return runtime.ActionRender{}, nil
	}
	return nil, nil
}

func (c *Counter) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	text := fmt.Sprintf("counter: %s  (%s/%s)",
		counterStyle.Render(fmt.Sprintf("%d", c.count)), c.increment, c.decrement)
	f.SetContent(text, area)
	return nil
}
