package runtime

import (
	"errors"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/bloodnighttw/yap/internal/screen"
)

// PropagationPolicy selects how a Container forwards events to its
// children.
type PropagationPolicy int

const (
	// Broadcast delivers the event to every child. The first returned
	// action becomes the container's result; any further child actions
	// are enqueued independently through the container's Updater so
	// none are collapsed or lost.
	Broadcast PropagationPolicy = iota

	// FirstMatch stops at the first child that returns an action.
	FirstMatch
)

// LayoutFunc divides an area among n children. It must be
// deterministic for a given area and child count.
type LayoutFunc func(area cellbuf.Rectangle, n int) []cellbuf.Rectangle

// Container is a Component that exclusively owns an ordered list of
// children and forwards lifecycle calls to them. Mount order is list
// order; unmount order is the exact reverse. Children never hold a
// reference back to the container; child-to-parent signaling goes
// through the action queue.
type Container struct {
	children []Component
	policy   PropagationPolicy
	layout   LayoutFunc
	updater  Updater
}

// NewContainer builds a container over the given children with the
// Broadcast policy and an even vertical layout.
func NewContainer(children ...Component) *Container {
	return &Container{children: children}
}

// Append adds children after the existing ones. Only valid before the
// container is mounted.
func (c *Container) Append(children ...Component) *Container {
	c.children = append(c.children, children...)
	return c
}

// WithPolicy sets the event propagation policy.
func (c *Container) WithPolicy(p PropagationPolicy) *Container {
	c.policy = p
	return c
}

// WithLayout overrides how the container divides its area among
// children.
func (c *Container) WithLayout(l LayoutFunc) *Container {
	c.layout = l
	return c
}

// Children exposes the child list for tests and composition helpers.
func (c *Container) Children() []Component {
	return c.children
}

// Init propagates to children in list order and fails fast: the first
// child error aborts the whole mount.
func (c *Container) Init(cfg Config) error {
	for _, child := range c.children {
		if err := child.Init(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Mounted records the updater, then propagates to children in order.
// A child error does not stop the remaining siblings; all errors are
// joined and surfaced to the caller.
func (c *Container) Mounted(size Size, up Updater) error {
	c.updater = up
	var errs []error
	for _, child := range c.children {
		if err := child.Mounted(size, up); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HandleEvent forwards the event according to the policy. Under
// Broadcast, every child action beyond the first is enqueued directly
// so one dispatch cycle can yield several independent actions.
func (c *Container) HandleEvent(ev Event) (Action, error) {
	var first Action
	for _, child := range c.children {
		act, err := child.HandleEvent(ev)
		if err != nil {
			return nil, err
		}
		if act == nil {
			continue
		}
		if first == nil {
			first = act
			if c.policy == FirstMatch {
				return first, nil
			}
			continue
		}
		c.updater.Post(act)
	}
	return first, nil
}

// Render divides the area and draws each child into its slot.
func (c *Container) Render(f *screen.Frame, area cellbuf.Rectangle) error {
	if len(c.children) == 0 {
		return nil
	}
	layout := c.layout
	if layout == nil {
		layout = evenRows
	}
	slots := layout(area, len(c.children))
	for i, child := range c.children {
		if i >= len(slots) {
			break
		}
		slot := slots[i]
		if slot.Dx() <= 0 || slot.Dy() <= 0 {
			continue
		}
		if err := child.Render(f, slot); err != nil {
			return err
		}
	}
	return nil
}

// Unmount tears children down in reverse mount order before the
// container itself, collecting every error instead of stopping at the
// first so all children get a chance to release resources.
func (c *Container) Unmount() error {
	var errs []error
	for i := len(c.children) - 1; i >= 0; i-- {
		if err := c.children[i].Unmount(); err != nil {
			errs = append(errs, err)
		}
	}
	c.updater = Updater{}
	return errors.Join(errs...)
}

// evenRows is the default layout: equal-height rows in child order,
// with any remainder going to the last child.
func evenRows(area cellbuf.Rectangle, n int) []cellbuf.Rectangle {
	slots := make([]cellbuf.Rectangle, 0, n)
	h := area.Dy() / n
	if h < 1 {
		h = 1
	}
	y := area.Min.Y
	for i := 0; i < n; i++ {
		height := h
		if i == n-1 {
			height = area.Min.Y + area.Dy() - y
		}
		if height < 0 {
			height = 0
		}
		slots = append(slots, cellbuf.Rect(area.Min.X, y, area.Dx(), height))
		y += height
	}
	return slots
}
