package runtime

import (
	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/screen"
)

// Config is the opaque configuration value handed unmodified from
// runtime construction into every Init call. Recognized contents are
// application-defined.
type Config = any

// Size is the terminal dimensions reported at mount time.
type Size struct {
	Width  int
	Height int
}

// Component is a stateful unit of the UI tree. Render is the only
// method an implementation must provide something meaningful for;
// embed Base to inherit no-op defaults for the rest.
//
// The runtime guarantees the lifecycle order for every component in
// the tree: Init exactly once, then one Render, then Mounted exactly
// once, then any number of HandleEvent/Render calls, then Unmount
// exactly once. No two methods ever run concurrently; the tree has a
// single owner.
type Component interface {
	// Init is called exactly once, before any render. An error here
	// aborts startup.
	Init(cfg Config) error

	// Mounted is called exactly once, after the component's first
	// render and before any HandleEvent. The Updater is the handle to
	// retain for asynchronous re-render requests.
	Mounted(size Size, up Updater) error

	// HandleEvent interprets one input event and returns at most one
	// action for the runtime to process. A nil event permits idle
	// bookkeeping. A nil action means no request.
	HandleEvent(ev Event) (Action, error)

	// Render draws the component into the frame, constrained to area.
	// It must be repeatable and must not block.
	Render(f *screen.Frame, area cellbuf.Rectangle) error

	// Unmount is called once before teardown. Errors are logged by
	// the runtime and never block exit.
	Unmount() error
}

// Base provides no-op implementations for every optional lifecycle
// method. Embed it and override what the component actually needs.
type Base struct{}

func (Base) Init(Config) error                 { return nil }
func (Base) Mounted(Size, Updater) error       { return nil }
func (Base) HandleEvent(Event) (Action, error) { return nil, nil }
func (Base) Unmount() error                    { return nil }
