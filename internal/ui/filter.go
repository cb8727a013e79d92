package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

// Filter is the editor driving the request list's fuzzy filter. Every
// edit publishes the new query and requests a redraw, so the list
// narrows as you type.
type Filter struct {
	runtime.Base
	editor  lineEditor
	query   *Query
	focused bool
}

func NewFilter(query *Query) *Filter {
	return &Filter{query: query}
}

func (fl *Filter) SetFocused(focused bool) {
	fl.focused = focused
}

func (fl *Filter) Focused() bool {
	return fl.focused
}

func (fl *Filter) HandleEvent(ev runtime.Event) (runtime.Action, error) {
	if !fl.focused {
		return nil, nil
	}
	key, ok := ev.(runtime.KeyEvent)
	if !ok {
		return nil, nil
	}
	if fl.editor.handleKey(key) {
		fl.query.Set(fl.editor.value())
		return runtime.ActionRender{}, nil
	}
	return nil, nil
}

func (fl *Filter) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	style := labelStyle
	if fl.focused {
		style = focusedLabelStyle
	}
	label := style.Render("filter> ")
	f.SetContent(label+fl.editor.value(), area)
	if fl.focused {
		offset := lipgloss.Width(label)
		f.SetCursor(area.Min.X+offset+fl.editor.cursorColumn(), area.Min.Y)
	}
	return nil
}
