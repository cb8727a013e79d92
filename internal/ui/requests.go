package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/sahilm/fuzzy"

	"github.com/bloodnighttw/yap/internal/proxy"
	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/screen"
)

var (
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6"))
	methodStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	timeStyle    = lipgloss.NewStyle().Faint(true)
	noMatchStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Requests shows the proxied HTTP traffic, newest first, narrowed by
// the shared filter query. The store is fed by server goroutines; the
// render path only ever reads snapshots.
type Requests struct {
	runtime.Base
	store  *proxy.Store
	query  *Query
	offset int
}

func NewRequests(store *proxy.Store, query *Query) *Requests {
	return &Requests{store: store, query: query}
}

// HandleEvent scrolls on mouse wheel input.
func (r *Requests) HandleEvent(ev runtime.Event) (runtime.Action, error) {
	mouse, ok := ev.(runtime.MouseEvent)
	if !ok {
		return nil, nil
	}
	switch mouse.Button {
	case runtime.MouseWheelUp:
		if r.offset > 0 {
			r.offset--
			return runtime.ActionRender{}, nil
		}
	case runtime.MouseWheelDown:
		r.offset++
		return runtime.ActionRender{}, nil
	}
	return nil, nil
}

func (r *Requests) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	if area.Dx() < 4 || area.Dy() < 3 {
		return nil
	}

	reqs := r.visible()
	// One line of title, two of border.
	innerHeight := area.Dy() - 3
	if max := len(reqs) - innerHeight; r.offset > max {
		r.offset = max
	}
	if r.offset < 0 {
		r.offset = 0
	}

	lines := make([]string, 0, innerHeight)
	for i := r.offset; i < len(reqs) && len(lines) < innerHeight; i++ {
		req := reqs[i]
		lines = append(lines, screen.Line(
			screen.Segment{Text: req.Time.Format("15:04:05"), Style: timeStyle},
			screen.Segment{Text: " "},
			screen.Segment{Text: fmt.Sprintf("%-6s", req.Method), Style: methodStyle},
			screen.Segment{Text: " " + req.URI},
		))
	}
	if len(lines) == 0 {
		lines = append(lines, noMatchStyle.Render("no requests"))
	}

	title := fmt.Sprintf("requests (%d)", r.store.Len())
	panel := panelStyle.
		Width(area.Dx() - 2).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
	f.SetContent(title+"\n"+panel, area)
	return nil
}

// visible applies the fuzzy filter to the snapshot, newest first.
func (r *Requests) visible() []proxy.Request {
	reqs := r.store.Snapshot()
	// Newest first.
	for i, j := 0, len(reqs)-1; i < j; i, j = i+1, j-1 {
		reqs[i], reqs[j] = reqs[j], reqs[i]
	}

	pattern := r.query.Get()
	if pattern == "" {
		return reqs
	}
	uris := make([]string, len(reqs))
	for i, req := range reqs {
		uris[i] = req.URI
	}
	matches := fuzzy.Find(pattern, uris)
	filtered := make([]proxy.Request, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, reqs[m.Index])
	}
	return filtered
}
