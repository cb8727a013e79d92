package runtime

import "fmt"

// Action is a control command addressed to the Runtime, never to a
// component directly. Components produce actions from HandleEvent, and
// background goroutines enqueue them through an Updater; the Runtime
// consumes them during its drain phase.
type Action interface {
	isAction()
	fmt.Stringer
}

// ActionRender requests a redraw of the whole tree. Multiple pending
// renders coalesce into a single draw per drain phase.
type ActionRender struct{}

// ActionResize tells the Runtime the terminal dimensions changed.
type ActionResize struct {
	Width  int
	Height int
}

// ActionQuit terminates the event loop.
type ActionQuit struct{}

// ActionSuspend releases the terminal and stops the process until it
// is continued, at which point the Runtime enqueues ActionResume.
type ActionSuspend struct{}

// ActionResume re-acquires the terminal after a suspend.
type ActionResume struct{}

// ActionCustom carries an application-defined payload. The core loop
// ignores it; applications that need their own control traffic can
// observe the queue through their own conventions.
type ActionCustom struct {
	Payload any
}

func (ActionRender) isAction()  {}
func (ActionResize) isAction()  {}
func (ActionQuit) isAction()    {}
func (ActionSuspend) isAction() {}
func (ActionResume) isAction()  {}
func (ActionCustom) isAction()  {}

func (ActionRender) String() string { return "Render" }
func (a ActionResize) String() string {
	return fmt.Sprintf("Resize(%d, %d)", a.Width, a.Height)
}
func (ActionQuit) String() string    { return "Quit" }
func (ActionSuspend) String() string { return "Suspend" }
func (ActionResume) String() string  { return "Resume" }
func (a ActionCustom) String() string {
	return fmt.Sprintf("Custom(%v)", a.Payload)
}
