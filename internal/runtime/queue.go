package runtime

import "sync"

// actionQueue is the unbounded multi-producer/single-consumer channel
// the runtime drains. Pushes never block and preserve per-producer
// order; a closed queue silently drops pushes so that Updaters held by
// leaked goroutines stay harmless after the runtime stops.
type actionQueue struct {
	mu     sync.Mutex
	items  []Action
	ready  chan struct{}
	closed bool
}

func newActionQueue() *actionQueue {
	return &actionQueue{ready: make(chan struct{}, 1)}
}

func (q *actionQueue) push(a Action) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, a)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *actionQueue) pop() (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a, true
}

func (q *actionQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// readyCh signals that at least one action may be pending. The signal
// is coalesced; the consumer must drain by depth, not by signal count.
func (q *actionQueue) readyCh() <-chan struct{} {
	return q.ready
}

func (q *actionQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.items = nil
	q.mu.Unlock()
}
