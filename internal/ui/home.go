package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/config"
	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Home is the static banner at the top of the demo.
type Home struct {
	runtime.Base
	keys config.Keys
}

func NewHome() *Home {
	return &Home{}
}

func (h *Home) Init(cfg runtime.Config) error {
	if c, ok := cfg.(*config.Config); ok {
		h.keys = c.Keys
	}
	return nil
}

func (h *Home) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	help := fmt.Sprintf("%s quit · %s suspend · %s/%s counter · %s focus · %s browser",
		h.keys.Quit, h.keys.Suspend, h.keys.Increment, h.keys.Decrement, h.keys.FocusNext, h.keys.OpenBrowser)
	content := titleStyle.Render("yap") + "  " + helpStyle.Render(help)
	f.SetContent(content, area)
	return nil
}
