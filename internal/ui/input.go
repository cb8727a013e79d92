package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

var (
	labelStyle        = lipgloss.NewStyle().Faint(true)
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// Input is a focusable single-line editor. It only consumes keys while
// focused, and places the hardware cursor when it renders focused.
type Input struct {
	runtime.Base
	label   string
	editor  lineEditor
	focused bool
}

func NewInput(label string) *Input {
	return &Input{label: label}
}

func (in *Input) Value() string {
	return in.editor.value()
}

func (in *Input) SetFocused(focused bool) {
	in.focused = focused
}

func (in *Input) Focused() bool {
	return in.focused
}

func (in *Input) HandleEvent(ev runtime.Event) (runtime.Action, error) {
	if !in.focused {
		return nil, nil
	}
	switch ev := ev.(type) {
	case runtime.KeyEvent:
		if in.editor.handleKey(ev) {
			return runtime.ActionRender{}, nil
		}
	case runtime.PasteEvent:
		for _, r := range ev.Text {
			in.editor.handleKey(runtime.KeyEvent{Rune: r})
		}
		return runtime.ActionRender{}, nil
	}
	return nil, nil
}

func (in *Input) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	style := labelStyle
	if in.focused {
		style = focusedLabelStyle
	}
	label := style.Render(in.label + "> ")
	f.SetContent(label+in.editor.value(), area)
	if in.focused {
		offset := lipgloss.Width(label)
		f.SetCursor(area.Min.X+offset+in.editor.cursorColumn(), area.Min.Y)
	}
	return nil
}
