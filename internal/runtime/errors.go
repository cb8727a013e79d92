package runtime

import "fmt"

// Phase names the lifecycle stage an error occurred in.
type Phase string

const (
	PhaseInit    Phase = "init"
	PhaseMount   Phase = "mount"
	PhaseEvent   Phase = "event"
	PhaseRender  Phase = "render"
	PhaseUnmount Phase = "unmount"
)

// LifecycleError wraps a component error with the phase it happened
// in. Init, event and render errors are fatal to the loop; mount
// errors are recorded and the loop continues; unmount errors are
// logged and never block exit.
type LifecycleError struct {
	Phase Phase
	Err   error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}

func lifecycleErr(phase Phase, err error) error {
	if err == nil {
		return nil
	}
	return &LifecycleError{Phase: phase, Err: err}
}
