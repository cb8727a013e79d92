package runtime

import (
	"context"
	"fmt"

	"github.com/charmbracelet/x/cellbuf"
	log "github.com/sirupsen/logrus"

	"github.com/bloodnighttw/yap/internal/screen"
)

// Surface is the terminal backend the runtime draws through. Enter and
// Exit must be idempotent; the runtime guarantees Exit runs on every
// return path so the user's terminal is never left raw.
type Surface interface {
	Enter() error
	Exit() error
	Suspend() error
	Resume() error
	Size() (width, height int)
	Draw(f *screen.Frame) error
}

// EventSource produces the lazy, infinite stream of input events. A
// closed channel ends the loop. The source must block cooperatively,
// never busy-poll.
type EventSource interface {
	Events() <-chan Event
}

// State is the runtime's position in its lifecycle state machine.
type State int

const (
	StateInit State = iota
	StateMounted
	StateRunning
	StateSuspending
	StateSuspended
	StateQuitting
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateMounted:
		return "mounted"
	case StateRunning:
		return "running"
	case StateSuspending:
		return "suspending"
	case StateSuspended:
		return "suspended"
	case StateQuitting:
		return "quitting"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Runtime owns the root component, the action queue and the terminal
// surface, and runs the single event loop that sequences mount,
// dispatch and render. All component methods run on the goroutine that
// calls Run; background work communicates exclusively through
// Updaters.
type Runtime struct {
	root    Component
	cfg     Config
	surface Surface
	source  EventSource
	queue   *actionQueue
	state   State
	area    cellbuf.Rectangle
}

// New builds a runtime over the given root component. The config value
// is passed unmodified into Init.
func New(root Component, cfg Config, surface Surface, source EventSource) *Runtime {
	return &Runtime{
		root:    root,
		cfg:     cfg,
		surface: surface,
		source:  source,
		queue:   newActionQueue(),
		state:   StateInit,
	}
}

// Updater returns a handle bound to the runtime's action queue, for
// producers that exist outside the component tree (servers, timers).
// It is valid before Run and harmless after Run returns.
func (r *Runtime) Updater() Updater {
	return Updater{q: r.queue}
}

// State reports the current lifecycle state. Only meaningful from the
// goroutine running the loop; exposed for tests.
func (r *Runtime) State() State {
	return r.state
}

// Run executes the full lifecycle: mount, event loop, unmount. It
// returns the first fatal error, after restoring the terminal. Closing
// the event source or cancelling the context both quit cleanly.
func (r *Runtime) Run(ctx context.Context) (err error) {
	if err := r.surface.Enter(); err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer func() {
		// The queue closes before the surface is released so that any
		// Updater still held by a background goroutine degrades to a
		// no-op the moment the loop stops consuming.
		r.queue.close()
		r.state = StateStopped
		if exitErr := r.surface.Exit(); exitErr != nil && err == nil {
			err = fmt.Errorf("release terminal: %w", exitErr)
		}
	}()

	if err := r.mount(); err != nil {
		return err
	}

	r.state = StateRunning
	for r.state != StateQuitting {
		select {
		case <-ctx.Done():
			log.Debug("context cancelled, quitting")
			r.state = StateQuitting

		case ev, ok := <-r.source.Events():
			if !ok {
				log.Debug("event source closed, quitting")
				r.state = StateQuitting
				break
			}
			if err := r.dispatchEvent(ev); err != nil {
				return err
			}

		case <-r.queue.readyCh():
		}

		// Drain phase: everything queued by now is processed before
		// the loop waits again, so neither source can starve the
		// other and rapid render requests coalesce into one draw.
		if r.state != StateQuitting && r.queue.len() > 0 {
			if err := r.drainActions(); err != nil {
				return err
			}
		}
	}

	r.unmount()
	return nil
}

// mount performs Init on the whole tree, the first render, then
// Mounted. Init errors abort startup; Mounted errors are recorded and
// the loop proceeds with whatever mounted (siblings already rendered
// are not torn down).
func (r *Runtime) mount() error {
	w, h := r.surface.Size()
	r.area = cellbuf.Rect(0, 0, w, h)

	log.Info("mounting component tree")
	if err := r.root.Init(r.cfg); err != nil {
		return lifecycleErr(PhaseInit, err)
	}

	if err := r.render(); err != nil {
		return err
	}

	if err := r.root.Mounted(Size{Width: w, Height: h}, Updater{q: r.queue}); err != nil {
		log.WithError(err).Error("mount hook failed, continuing")
	}
	r.state = StateMounted
	return nil
}

// dispatchEvent hands one event to the tree. Resize events also become
// resize actions so layout and redraw happen in the drain phase,
// batched with whatever else is pending.
func (r *Runtime) dispatchEvent(ev Event) error {
	if rs, ok := ev.(ResizeEvent); ok {
		r.queue.push(ActionResize{Width: rs.Width, Height: rs.Height})
	}

	act, err := r.root.HandleEvent(ev)
	if err != nil {
		return lifecycleErr(PhaseEvent, err)
	}
	if act != nil {
		r.queue.push(act)
	}
	return nil
}

// drainActions processes every action queued at entry. Actions pushed
// while draining wait for the next phase, which bounds the drain even
// when an action produces more actions. At most one draw happens per
// drain regardless of how many renders were requested.
func (r *Runtime) drainActions() error {
	depth := r.queue.len()
	needRender := false

	for i := 0; i < depth; i++ {
		act, ok := r.queue.pop()
		if !ok {
			break
		}
		switch a := act.(type) {
		case ActionRender:
			needRender = true

		case ActionResize:
			log.WithField("action", a.String()).Debug("resize")
			r.area = cellbuf.Rect(0, 0, a.Width, a.Height)
			needRender = true

		case ActionQuit:
			log.Debug("quit action")
			r.state = StateQuitting
			return nil

		case ActionSuspend:
			log.Debug("suspending")
			r.state = StateSuspending
			if err := r.surface.Suspend(); err != nil {
				log.WithError(err).Warn("suspend failed")
			}
			r.state = StateSuspended
			// Suspend returns once the process has been continued;
			// the companion action brings the surface back.
			r.queue.push(ActionResume{})

		case ActionResume:
			log.Debug("resuming")
			if err := r.surface.Resume(); err != nil {
				log.WithError(err).Warn("resume failed")
			}
			w, h := r.surface.Size()
			r.area = cellbuf.Rect(0, 0, w, h)
			r.state = StateRunning
			needRender = true

		case ActionCustom:
			log.WithField("action", a.String()).Debug("ignoring custom action")
		}
	}

	if needRender {
		return r.render()
	}
	return nil
}

// render draws the whole tree into a fresh frame and flushes it. A
// render failure is fatal: a half-drawn frame is not a state the loop
// recovers from.
func (r *Runtime) render() error {
	f := screen.NewFrame(r.area.Dx(), r.area.Dy())
	if err := r.root.Render(f, r.area); err != nil {
		return lifecycleErr(PhaseRender, err)
	}
	if err := r.surface.Draw(f); err != nil {
		return lifecycleErr(PhaseRender, err)
	}
	return nil
}

// unmount tears the tree down post-order. Errors are logged and
// dropped; cleanup never blocks exit.
func (r *Runtime) unmount() {
	log.Info("unmounting component tree")
	if err := r.root.Unmount(); err != nil {
		log.WithError(err).Warn("unmount")
	}
}
