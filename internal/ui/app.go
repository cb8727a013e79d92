package ui

import (
	"github.com/charmbracelet/x/cellbuf"
	log "github.com/sirupsen/logrus"

	"github.com/bloodnighttw/yap/internal/browser"
	"github.com/bloodnighttw/yap/internal/config"
	"github.com/bloodnighttw/yap/internal/proxy"
	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
	"github.com/bloodnighttw/yap/internal/ui/layout"
)

// focusable is a component whose key handling can be switched on and
// off by the App's focus cycle.
type focusable interface {
	runtime.Component
	SetFocused(bool)
	Focused() bool
}

// App is the demo's root component: a container of the left column and
// the requests panel, wrapped with global keybindings, focus cycling
// and a draggable split.
type App struct {
	*runtime.Container

	keys     config.Keys
	proxyURL string
	split    *layout.Split
	focus    []focusable
	focused  int // index into focus, -1 = none
	area     cellbuf.Rectangle
	dragging bool
}

// NewApp assembles the demo tree over the shared request store.
func NewApp(store *proxy.Store) *App {
	query := NewQuery()
	input := NewInput("host")
	filter := NewFilter(query)

	left := runtime.NewContainer(
		NewHome(),
		NewFps(),
		NewCounter(),
		NewAutoCounter(),
		input,
		filter,
	).WithLayout(rows(1, 1, 1, 1, 1, 1))

	requests := NewRequests(store, query)

	app := &App{
		split:   layout.NewSplit(40, false),
		focus:   []focusable{input, filter},
		focused: -1,
	}
	app.Container = runtime.NewContainer(left, requests).WithLayout(app.splitLayout)
	return app
}

func (a *App) Init(cfg runtime.Config) error {
	if c, ok := cfg.(*config.Config); ok {
		a.keys = c.Keys
		if c.Proxy.Enabled {
			a.proxyURL = "http://" + c.Proxy.Listen
		}
	}
	if a.keys.Quit == "" {
		a.keys = config.Default().Keys
	}
	return a.Container.Init(cfg)
}

// HandleEvent resolves global keys first, routes plain text keys to
// the focused editor only, and broadcasts everything else through the
// container.
func (a *App) HandleEvent(ev runtime.Event) (runtime.Action, error) {
	switch ev := ev.(type) {
	case runtime.KeyEvent:
		return a.handleKey(ev)
	case runtime.MouseEvent:
		if act := a.handleMouse(ev); act != nil {
			return act, nil
		}
	case runtime.ResizeEvent:
		a.area = cellbuf.Rect(0, 0, ev.Width, ev.Height)
	}
	return a.Container.HandleEvent(ev)
}

func (a *App) handleKey(key runtime.KeyEvent) (runtime.Action, error) {
	switch key.String() {
	case a.keys.Quit:
		return runtime.ActionQuit{}, nil
	case a.keys.Suspend:
		return runtime.ActionSuspend{}, nil
	case a.keys.FocusNext:
		a.cycleFocus()
		return runtime.ActionRender{}, nil
	case a.keys.GrowPanel:
		a.split.Expand(5)
		return runtime.ActionRender{}, nil
	case a.keys.ShrinkPanel:
		a.split.Shrink(5)
		return runtime.ActionRender{}, nil
	case a.keys.OpenBrowser:
		if a.proxyURL != "" {
			if err := browser.Open(a.proxyURL); err != nil {
				log.WithError(err).Warn("open browser")
			}
		}
		return nil, nil
	}

	// While an editor is focused, plain runes belong to it alone;
	// broadcasting them would also feed hotkey components.
	if a.focused >= 0 && key.Code == runtime.KeyRune && key.Mods&runtime.ModCtrl == 0 {
		return a.focus[a.focused].HandleEvent(key)
	}
	return a.Container.HandleEvent(key)
}

// handleMouse implements dragging the split border. Other mouse events
// fall through to the container (the caller broadcasts them).
func (a *App) handleMouse(mouse runtime.MouseEvent) runtime.Action {
	box := layout.NewBox(a.area)
	main, _ := a.split.Apply(box)

	switch mouse.Button {
	case runtime.MouseLeft:
		if mouse.X == main.R.Max.X || mouse.X == main.R.Max.X+1 {
			a.dragging = true
		}
	case runtime.MouseMotion:
		if a.dragging && a.split.DragTo(box, mouse.X, mouse.Y) {
			return runtime.ActionRender{}
		}
	case runtime.MouseRelease:
		a.dragging = false
	}
	return nil
}

func (a *App) cycleFocus() {
	if a.focused >= 0 {
		a.focus[a.focused].SetFocused(false)
	}
	a.focused++
	if a.focused >= len(a.focus) {
		a.focused = -1
		return
	}
	a.focus[a.focused].SetFocused(true)
}

func (a *App) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	a.area = area
	return a.Container.Render(f, area)
}

// splitLayout divides the root area between the left column and the
// requests panel.
func (a *App) splitLayout(area cellbuf.Rectangle, n int) []cellbuf.Rectangle {
	main, panel := a.split.Apply(layout.NewBox(area))
	return []cellbuf.Rectangle{main.R, panel.R}
}

// rows builds a container layout with one fixed-height row per child;
// a zero height means fill the rest.
func rows(heights ...int) runtime.LayoutFunc {
	return func(area cellbuf.Rectangle, n int) []cellbuf.Rectangle {
		cs := make([]layout.Constraint, 0, n)
		for i := 0; i < n; i++ {
			h := 1
			if i < len(heights) {
				h = heights[i]
			}
			if h == 0 {
				cs = append(cs, layout.Fill(1))
			} else {
				cs = append(cs, layout.Fixed(h))
			}
		}
		boxes := layout.NewBox(area).V(cs...)
		rects := make([]cellbuf.Rectangle, len(boxes))
		for i, b := range boxes {
			rects[i] = b.R
		}
		return rects
	}
}
